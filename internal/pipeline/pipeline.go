// Package pipeline runs the three extraction stages in sequence:
// weather extract, market extract + combine, merge.
package pipeline

import (
	"context"
	"log"
	"path/filepath"

	"github.com/Dattibou/Strommarkt-Analyse/internal/config"
	"github.com/Dattibou/Strommarkt-Analyse/internal/dataset"
	"github.com/Dattibou/Strommarkt-Analyse/internal/smard"
	"github.com/Dattibou/Strommarkt-Analyse/internal/weather"
)

// Runner wires the configured clients to the pipeline stages.
type Runner struct {
	Config  *config.Config
	Weather *weather.Client
	SMARD   *smard.Client
}

// New builds a Runner with clients derived from cfg.
func New(cfg *config.Config) *Runner {
	return &Runner{
		Config:  cfg,
		Weather: weather.NewClient(cfg.Weather.BaseURL),
		SMARD:   smard.NewClient(cfg.SMARD.BaseURL, cfg.SMARD.Region, cfg.SMARD.Resolution),
	}
}

// RunWeather runs the weather extraction stage.
func (r *Runner) RunWeather(ctx context.Context) error {
	w := r.Config.Weather
	box := weather.BoundingBox{
		LatMin: w.LatMin, LatMax: w.LatMax,
		LonMin: w.LonMin, LonMax: w.LonMax,
	}
	return weather.Extract(ctx, r.Weather, box, w.StartDate, w.EndDate, r.Config.Paths.WeatherDir)
}

// RunSMARD runs the weekly market-data extraction stage.
func (r *Runner) RunSMARD(ctx context.Context) error {
	year, month, day := r.Config.SMARDStart()
	return smard.Extract(ctx, r.SMARD, year, month, day, r.Config.SMARD.ProbeDays, r.Config.Paths.SMARDDir)
}

// RunCombine concatenates the weekly market files into one CSV.
func (r *Runner) RunCombine() error {
	return smard.CombineWeeks(r.Config.Paths.SMARDDir)
}

// RunMerge joins the combined market CSV with the averaged weather CSV.
func (r *Runner) RunMerge() error {
	return dataset.MergeFiles(
		filepath.Join(r.Config.Paths.SMARDDir, smard.CombinedFile),
		filepath.Join(r.Config.Paths.WeatherDir, weather.OutputFile),
		r.Config.Paths.MergedFile,
	)
}

// Run executes all stages in order, stopping at the first failure.
func (r *Runner) Run(ctx context.Context) error {
	log.Printf("[pipeline] starting full run")
	if err := r.RunWeather(ctx); err != nil {
		return err
	}
	if err := r.RunSMARD(ctx); err != nil {
		return err
	}
	if err := r.RunCombine(); err != nil {
		return err
	}
	if err := r.RunMerge(); err != nil {
		return err
	}
	log.Printf("[pipeline] full run complete")
	return nil
}
