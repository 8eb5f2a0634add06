package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"gpstime-ng/internal/config"
	"gpstime-ng/internal/gpstime"
)

const (
	modeArange   = "arange"
	modeValidate = "validate"
	modeResolve  = "resolve"
)

// options carries flag values that only make sense on the command line.
type options struct {
	Mode string

	// DurationS overrides cfg.Arange.Duration without truncating to ns.
	DurationS *float64
	FullWeek  *int
	GPSWeek   *int
}

func run(w io.Writer, cfg config.Config, opts options, now func() gpstime.GPSTime) error {
	switch opts.Mode {
	case modeArange:
		return runArange(w, cfg, opts, now)
	case modeValidate:
		return runValidate(w, cfg, opts)
	case modeResolve:
		return runResolve(w, cfg, opts, now)
	default:
		return fmt.Errorf("unknown mode %q", opts.Mode)
	}
}

func startTime(cfg config.Config, now func() gpstime.GPSTime) gpstime.GPSTime {
	if cfg.Arange.Start.IsZero() {
		return now()
	}
	return gpstime.FromTime(cfg.Arange.Start)
}

func runArange(w io.Writer, cfg config.Config, opts options, now func() gpstime.GPSTime) error {
	durationS := cfg.Arange.Duration.Seconds()
	if opts.DurationS != nil {
		durationS = *opts.DurationS
	}
	start := startTime(cfg, now)

	stepMS := cfg.Arange.Step()
	seq, err := gpstime.Arange(start, durationS, stepMS)
	if err != nil {
		return err
	}
	log.Printf("arange start=%s duration_s=%g step_ms=%g n=%d", start, durationS, stepMS, len(seq))
	for i, g := range seq {
		fmt.Fprintf(w, "%d %d %.9f %s\n", i, g.Week(), g.TimeOfWeek(), g.Time().Format(time.RFC3339Nano))
	}
	return nil
}

func runValidate(w io.Writer, cfg config.Config, opts options) error {
	pairs := append([]config.WeekPair(nil), cfg.Weeks...)
	if opts.FullWeek != nil || opts.GPSWeek != nil {
		if opts.FullWeek == nil || opts.GPSWeek == nil {
			return fmt.Errorf("-full-week and -gps-week must be given together")
		}
		if *opts.FullWeek < 0 {
			return fmt.Errorf("-full-week must be >= 0")
		}
		pairs = append(pairs, config.WeekPair{FullWeek: *opts.FullWeek, GPSWeek: *opts.GPSWeek})
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no week pairs to validate")
	}

	for _, p := range pairs {
		if err := gpstime.ValidateGPSWeek(p.FullWeek, p.GPSWeek); err != nil {
			return err
		}
		fmt.Fprintf(w, "ok full_week=%d gps_week=%d\n", p.FullWeek, p.GPSWeek)
	}
	return nil
}

func runResolve(w io.Writer, cfg config.Config, opts options, now func() gpstime.GPSTime) error {
	if opts.GPSWeek == nil {
		return fmt.Errorf("-gps-week is required for resolve")
	}
	ref := startTime(cfg, now)
	full, err := gpstime.ResolveWeek(*opts.GPSWeek, ref)
	if err != nil {
		return err
	}
	log.Printf("resolve gps_week=%d ref=%s", *opts.GPSWeek, ref)
	fmt.Fprintf(w, "full_week=%d\n", full)
	return nil
}
