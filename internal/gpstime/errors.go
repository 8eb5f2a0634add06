package gpstime

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for nonsensical sequence parameters.
	ErrInvalidArgument = errors.New("gpstime: invalid argument")
	// ErrInconsistentWeek matches any *InconsistentWeekError under errors.Is.
	ErrInconsistentWeek = errors.New("gpstime: inconsistent gps week")
)

// InconsistentWeekError reports a full week that does not reduce to the
// broadcast (mod-1024) week it was paired with.
type InconsistentWeekError struct {
	FullWeek int
	GPSWeek  int
}

// Log consumers match on this exact wording.
func (e *InconsistentWeekError) Error() string {
	return fmt.Sprintf("Full GPS Week %d must be mod 1024 of GPS Week %d", e.FullWeek, e.GPSWeek)
}

func (e *InconsistentWeekError) Is(target error) bool {
	return target == ErrInconsistentWeek
}
