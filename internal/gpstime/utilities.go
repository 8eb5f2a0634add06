package gpstime

import (
	"fmt"
	"math"
	"time"
)

// maxArangeLen caps the number of elements Arange will allocate.
const maxArangeLen = 1 << 24

// Arange returns GPSTimes from start spaced stepMS milliseconds apart over the
// half-open interval [start, start+durationS). Like numpy.arange, the endpoint
// is never included: a start of 0, duration of 5 and step of 1000ms yields
// 0, 1, 2, 3, 4.
//
// Duration and step are rounded to whole nanoseconds, the resolution of
// GPSTime, and the sequence is laid out on that grid. A zero or negative
// duration yields an empty sequence. A step under 1ns, a non-finite argument,
// or a span that would leave the representable GPSTime range is rejected with
// ErrInvalidArgument.
func Arange(start GPSTime, durationS, stepMS float64) ([]GPSTime, error) {
	if math.IsNaN(stepMS) || math.IsInf(stepMS, 0) || stepMS <= 0 {
		return nil, fmt.Errorf("%w: step_ms must be > 0, got %v", ErrInvalidArgument, stepMS)
	}
	if math.IsNaN(durationS) || math.IsInf(durationS, 0) {
		return nil, fmt.Errorf("%w: duration_s must be finite, got %v", ErrInvalidArgument, durationS)
	}
	if durationS <= 0 {
		return []GPSTime{}, nil
	}

	stepF := math.Round(stepMS * 1e6)
	if stepF < 1 {
		return nil, fmt.Errorf("%w: step_ms %v is below 1ns", ErrInvalidArgument, stepMS)
	}
	durF := math.Round(durationS * 1e9)
	// float64(math.MaxInt64) is 2^63, so >= catches everything int64 cannot hold.
	if stepF >= math.MaxInt64 || durF >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: duration_s %v or step_ms %v out of range", ErrInvalidArgument, durationS, stepMS)
	}
	stepNs, durNs := int64(stepF), int64(durF)
	if start.ns > math.MaxInt64-durNs {
		return nil, fmt.Errorf("%w: %s + %v s overflows", ErrInvalidArgument, start, durationS)
	}

	n := durNs / stepNs
	if durNs%stepNs != 0 {
		n++
	}
	if n > maxArangeLen {
		return nil, fmt.Errorf("%w: %v s at %v ms is too many steps", ErrInvalidArgument, durationS, stepMS)
	}

	out := make([]GPSTime, 0, n)
	for i := int64(0); i < n; i++ {
		out = append(out, start.AddDuration(time.Duration(i*stepNs)))
	}
	return out, nil
}

// ValidateGPSWeek checks that fullWeek (weeks since 6 Jan 1980) reduces to the
// mod-1024 gpsWeek. The modulo is floored, as in Mod1024Week, so week -1 reduces
// to 1023. gpsWeek itself is not range checked; a mismatch of any kind returns
// an *InconsistentWeekError.
func ValidateGPSWeek(fullWeek, gpsWeek int) error {
	m := fullWeek % WeekRollover
	if m < 0 {
		m += WeekRollover
	}
	if m != gpsWeek {
		return &InconsistentWeekError{FullWeek: fullWeek, GPSWeek: gpsWeek}
	}
	return nil
}

// ResolveWeek expands a broadcast mod-1024 week into the full week closest to
// ref. Ties resolve to the earlier week.
func ResolveWeek(gpsWeek int, ref GPSTime) (int, error) {
	if gpsWeek < 0 || gpsWeek >= WeekRollover {
		return 0, fmt.Errorf("%w: gps week %d outside [0, %d)", ErrInvalidArgument, gpsWeek, WeekRollover)
	}
	refWeek := ref.Week()
	base := refWeek - ref.Mod1024Week() + gpsWeek

	best := base
	for _, cand := range []int{base - WeekRollover, base + WeekRollover} {
		if absInt(cand-refWeek) < absInt(best-refWeek) ||
			(absInt(cand-refWeek) == absInt(best-refWeek) && cand < best) {
			best = cand
		}
	}
	return best, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
