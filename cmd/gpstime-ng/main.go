package main

import (
	"flag"
	"log"
	"os"
	"time"

	"gpstime-ng/internal/config"
	"gpstime-ng/internal/gpstime"
)

func main() {
	var (
		configPath string
		mode       string
		start      string
		durationS  float64
		stepMS     float64
		fullWeek   int
		gpsWeek    int
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config (optional)")
	flag.StringVar(&mode, "mode", modeArange, "arange | validate | resolve")
	flag.StringVar(&start, "start", "", "Sequence start, RFC3339 UTC (default: now)")
	flag.Float64Var(&durationS, "duration", 0, "Sequence duration in seconds")
	flag.Float64Var(&stepMS, "step-ms", 0, "Sequence step in milliseconds")
	flag.IntVar(&fullWeek, "full-week", 0, "Full GPS week to validate")
	flag.IntVar(&gpsWeek, "gps-week", 0, "Mod-1024 GPS week to validate or resolve")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	opts := options{Mode: mode}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			cfg.Arange.StartUTC = start
		case "duration":
			cfg.Arange.Duration = time.Duration(durationS * float64(time.Second))
			opts.DurationS = &durationS
		case "step-ms":
			cfg.Arange.StepMS = &stepMS
		case "gps-week":
			opts.GPSWeek = &gpsWeek
		case "full-week":
			opts.FullWeek = &fullWeek
		}
	})
	if start != "" {
		t, err := time.Parse(time.RFC3339Nano, start)
		if err != nil {
			log.Fatalf("invalid -start %q: %v", start, err)
		}
		cfg.Arange.Start = t.UTC()
	}

	if err := run(os.Stdout, cfg, opts, gpstime.Now); err != nil {
		log.Fatalf("%s failed: %v", mode, err)
	}
}
