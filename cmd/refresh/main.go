package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Dattibou/Strommarkt-Analyse/internal/config"
	"github.com/Dattibou/Strommarkt-Analyse/internal/pipeline"
)

// refresh re-runs the full extraction pipeline on a fixed schedule so the
// merged dataset tracks newly published weekly bundles.
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	waitFirst := flag.Bool("wait", false, "Wait one interval before the first run")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	interval, err := cfg.Refresh.Duration()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	runner := pipeline.New(cfg)
	job := func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()

		if err := runner.Run(ctx); err != nil {
			log.Printf("[refresh] pipeline run failed: %v", err)
		}
	}

	s := gocron.NewScheduler(time.UTC)
	sched := s.Every(interval)
	if *waitFirst {
		sched = sched.WaitForSchedule()
	}
	if _, err := sched.Do(job); err != nil {
		log.Fatalf("failed to schedule pipeline: %v", err)
	}

	log.Printf("[refresh] scheduling pipeline every %v", interval)
	s.StartBlocking()
}
