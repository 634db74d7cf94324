package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Dattibou/Strommarkt-Analyse/internal/config"
	"github.com/Dattibou/Strommarkt-Analyse/internal/pipeline"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "weather":
		runStage(os.Args[2:], "weather", func(ctx context.Context, r *pipeline.Runner) error {
			return r.RunWeather(ctx)
		})
	case "smard":
		runStage(os.Args[2:], "smard", func(ctx context.Context, r *pipeline.Runner) error {
			return r.RunSMARD(ctx)
		})
	case "combine":
		runStage(os.Args[2:], "combine", func(_ context.Context, r *pipeline.Runner) error {
			return r.RunCombine()
		})
	case "merge":
		runStage(os.Args[2:], "merge", func(_ context.Context, r *pipeline.Runner) error {
			return r.RunMerge()
		})
	case "all":
		runStage(os.Args[2:], "all", func(ctx context.Context, r *pipeline.Runner) error {
			return r.Run(ctx)
		})
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli weather [--config config.yaml]   fetch grid-averaged weather data")
	fmt.Println("  cli smard   [--config config.yaml]   fetch weekly market bundles")
	fmt.Println("  cli combine [--config config.yaml]   combine weekly bundles into one CSV")
	fmt.Println("  cli merge   [--config config.yaml]   join market and weather data")
	fmt.Println("  cli all     [--config config.yaml]   run the full pipeline")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - without --config, defaults cover Germany and the September 2025 window")
	fmt.Println("  - outputs: weather_data/, smard_data/, merged.csv")
}

func runStage(args []string, name string, stage func(context.Context, *pipeline.Runner) error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	start := fs.String("start", "", "Override start date (YYYY-MM-DD)")
	end := fs.String("end", "", "Override weather end date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *start != "" {
		cfg.Weather.StartDate = *start
		cfg.SMARD.StartDate = *start
	}
	if *end != "" {
		cfg.Weather.EndDate = *end
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid overrides: %v", err)
	}

	r := pipeline.New(cfg)
	if err := stage(context.Background(), r); err != nil {
		log.Fatalf("%s failed: %v", name, err)
	}
}
