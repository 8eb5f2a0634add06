//go:build !linux

package gpstime

import "time"

func Now() GPSTime {
	return FromTime(time.Now())
}
