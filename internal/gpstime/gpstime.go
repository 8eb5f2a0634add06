package gpstime

import (
	"fmt"
	"math"
	"time"
)

// Epoch is the origin of the GPS time scale (1980-01-06 00:00:00 UTC).
var Epoch = time.Date(1980, 1, 6, 0, 0, 0, 0, time.UTC)

const (
	weekNanos = int64(7 * 24 * time.Hour)

	// WeekRollover is the modulus of the legacy 10-bit broadcast week field.
	WeekRollover = 1024
)

// GPSTime is an instant on the GPS time scale, held as nanoseconds since Epoch.
// The zero value is Epoch. GPSTime is a value type and is never mutated.
type GPSTime struct {
	ns int64
}

// New returns the GPSTime at towSeconds into the given full GPS week.
func New(week int, towSeconds float64) GPSTime {
	return GPSTime{ns: int64(week)*weekNanos + secondsToNanos(towSeconds)}
}

// FromTime converts a civil time to the GPS scale, applying leap seconds.
func FromTime(t time.Time) GPSTime {
	t = t.UTC()
	return GPSTime{ns: int64(t.Sub(Epoch)) + int64(LeapSeconds(t))*int64(time.Second)}
}

// Time converts back to civil UTC time.
func (g GPSTime) Time() time.Time {
	d := time.Duration(g.ns)
	for i := len(leapTable) - 1; i >= 0; i-- {
		e := leapTable[i]
		off := time.Duration(e.offset) * time.Second
		if d >= e.utc.Sub(Epoch)+off {
			return Epoch.Add(d - off)
		}
	}
	return Epoch.Add(d)
}

// Add returns g shifted by offsetS seconds, rounded to the nearest nanosecond.
func (g GPSTime) Add(offsetS float64) GPSTime {
	return GPSTime{ns: g.ns + secondsToNanos(offsetS)}
}

func (g GPSTime) AddDuration(d time.Duration) GPSTime {
	return GPSTime{ns: g.ns + int64(d)}
}

// Sub returns g-o.
func (g GPSTime) Sub(o GPSTime) time.Duration {
	return time.Duration(g.ns - o.ns)
}

func (g GPSTime) Before(o GPSTime) bool { return g.ns < o.ns }
func (g GPSTime) After(o GPSTime) bool  { return g.ns > o.ns }
func (g GPSTime) Equal(o GPSTime) bool  { return g.ns == o.ns }

// Week is the full (unbounded) GPS week number. Instants before Epoch have
// negative weeks.
func (g GPSTime) Week() int {
	w := g.ns / weekNanos
	if g.ns%weekNanos < 0 {
		w--
	}
	return int(w)
}

// TimeOfWeek is the number of seconds since the start of Week, in [0, 604800).
func (g GPSTime) TimeOfWeek() float64 {
	r := g.ns % weekNanos
	if r < 0 {
		r += weekNanos
	}
	return float64(r) / 1e9
}

// Mod1024Week is the week number as broadcast in the 10-bit navigation field.
func (g GPSTime) Mod1024Week() int {
	w := g.Week() % WeekRollover
	if w < 0 {
		w += WeekRollover
	}
	return w
}

// Seconds is the number of seconds since Epoch.
func (g GPSTime) Seconds() float64 {
	return float64(g.ns) / 1e9
}

func (g GPSTime) String() string {
	return fmt.Sprintf("GPSTime(week=%d, tow=%.9f)", g.Week(), g.TimeOfWeek())
}

func secondsToNanos(s float64) int64 {
	return int64(math.Round(s * 1e9))
}
