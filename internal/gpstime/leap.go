package gpstime

import "time"

// leapEntry records the GPS-UTC offset in effect from utc onward.
type leapEntry struct {
	utc    time.Time
	offset int
}

// GPS-UTC offsets; update when IERS announces a new leap second.
var leapTable = []leapEntry{
	{time.Date(1981, 7, 1, 0, 0, 0, 0, time.UTC), 1},
	{time.Date(1982, 7, 1, 0, 0, 0, 0, time.UTC), 2},
	{time.Date(1983, 7, 1, 0, 0, 0, 0, time.UTC), 3},
	{time.Date(1985, 7, 1, 0, 0, 0, 0, time.UTC), 4},
	{time.Date(1988, 1, 1, 0, 0, 0, 0, time.UTC), 5},
	{time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), 6},
	{time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC), 7},
	{time.Date(1992, 7, 1, 0, 0, 0, 0, time.UTC), 8},
	{time.Date(1993, 7, 1, 0, 0, 0, 0, time.UTC), 9},
	{time.Date(1994, 7, 1, 0, 0, 0, 0, time.UTC), 10},
	{time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC), 11},
	{time.Date(1997, 7, 1, 0, 0, 0, 0, time.UTC), 12},
	{time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), 13},
	{time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC), 14},
	{time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC), 15},
	{time.Date(2012, 7, 1, 0, 0, 0, 0, time.UTC), 16},
	{time.Date(2015, 7, 1, 0, 0, 0, 0, time.UTC), 17},
	{time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), 18},
}

// LeapSeconds returns the GPS-UTC offset, in whole seconds, at UTC time t.
func LeapSeconds(t time.Time) int {
	t = t.UTC()
	n := 0
	for _, e := range leapTable {
		if t.Before(e.utc) {
			break
		}
		n = e.offset
	}
	return n
}
