//go:build linux

package gpstime

import (
	"time"

	"golang.org/x/sys/unix"
)

// taiMinusGPS is the fixed TAI-GPS offset.
const taiMinusGPS = 19 * time.Second

// Now reads CLOCK_TAI when the kernel has a TAI offset configured (chrony and
// ntpd set it), otherwise it falls back to the leap table on the UTC clock.
func Now() GPSTime {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_TAI, &ts); err == nil {
		tai := time.Unix(ts.Unix())
		// An unconfigured kernel reports CLOCK_TAI == CLOCK_REALTIME; TAI-UTC
		// has been at least 10s since 1972.
		if tai.Sub(time.Now()) >= 10*time.Second {
			return GPSTime{ns: int64(tai.Sub(Epoch) - taiMinusGPS)}
		}
	}
	return FromTime(time.Now())
}
