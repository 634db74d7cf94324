// Package config loads the pipeline configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Weather WeatherConfig `yaml:"weather"`
	SMARD   SMARDConfig   `yaml:"smard"`
	Paths   PathsConfig   `yaml:"paths"`
	API     APIConfig     `yaml:"api"`
	Refresh RefreshConfig `yaml:"refresh"`
}

// WeatherConfig parameterizes the weather extractor. The bounding box
// defaults cover Germany.
type WeatherConfig struct {
	BaseURL   string  `yaml:"base_url"`
	LatMin    float64 `yaml:"lat_min" validate:"gte=-90,lte=90"`
	LatMax    float64 `yaml:"lat_max" validate:"gte=-90,lte=90,gtfield=LatMin"`
	LonMin    float64 `yaml:"lon_min" validate:"gte=-180,lte=180"`
	LonMax    float64 `yaml:"lon_max" validate:"gte=-180,lte=180,gtfield=LonMin"`
	StartDate string  `yaml:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `yaml:"end_date" validate:"required,datetime=2006-01-02"`
}

// SMARDConfig parameterizes the market-data extractor.
type SMARDConfig struct {
	BaseURL    string `yaml:"base_url"`
	Region     string `yaml:"region" validate:"required"`
	Resolution string `yaml:"resolution" validate:"required"`
	StartDate  string `yaml:"start_date" validate:"required,datetime=2006-01-02"`
	ProbeDays  int    `yaml:"probe_days" validate:"gte=1,lte=60"`
}

// PathsConfig fixes the on-disk layout of the produced CSV files.
type PathsConfig struct {
	WeatherDir string `yaml:"weather_dir" validate:"required"`
	SMARDDir   string `yaml:"smard_dir" validate:"required"`
	MergedFile string `yaml:"merged_file" validate:"required"`
}

// APIConfig configures the HTTP server in cmd/api.
type APIConfig struct {
	Port string `yaml:"port" validate:"required"`
}

// RefreshConfig configures the scheduled runner in cmd/refresh.
// Interval uses time.ParseDuration syntax, e.g. "24h".
type RefreshConfig struct {
	Interval string `yaml:"interval" validate:"required"`
}

// Duration parses the configured refresh interval.
func (r RefreshConfig) Duration() (time.Duration, error) {
	d, err := time.ParseDuration(r.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid refresh interval %q: %w", r.Interval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("refresh interval %q must be positive", r.Interval)
	}
	return d, nil
}

// Default returns the built-in configuration: the Germany bounding box
// and the September 2025 extraction window.
func Default() *Config {
	return &Config{
		Weather: WeatherConfig{
			LatMin:    47.2,
			LatMax:    55.1,
			LonMin:    5.9,
			LonMax:    15.0,
			StartDate: "2025-09-01",
			EndDate:   "2025-09-22",
		},
		SMARD: SMARDConfig{
			Region:     "DE",
			Resolution: "hour",
			StartDate:  "2025-09-02",
			ProbeDays:  14,
		},
		Paths: PathsConfig{
			WeatherDir: "weather_data",
			SMARDDir:   "smard_data",
			MergedFile: "merged.csv",
		},
		API: APIConfig{
			Port: "8080",
		},
		Refresh: RefreshConfig{
			Interval: "24h",
		},
	}
}

// Load reads configuration from an optional YAML file layered over the
// defaults, applies environment overrides and validates the result.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] no .env file loaded: %v", err)
	}

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays process-environment overrides onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("OPENMETEO_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("SMARD_BASE_URL"); v != "" {
		cfg.SMARD.BaseURL = v
	}
	if v := os.Getenv("API_PORT"); v != "" {
		cfg.API.Port = v
	}
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		cfg.Refresh.Interval = v
	}
}

// Validate checks field constraints plus the date orderings the tags
// cannot express.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}

	start, _ := time.Parse(dateLayout, c.Weather.StartDate)
	end, _ := time.Parse(dateLayout, c.Weather.EndDate)
	if end.Before(start) {
		return fmt.Errorf("config invalid: weather end_date %s before start_date %s",
			c.Weather.EndDate, c.Weather.StartDate)
	}
	if _, err := c.Refresh.Duration(); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}

// SMARDStart returns the market extraction start date as calendar parts.
func (c *Config) SMARDStart() (int, time.Month, int) {
	t, _ := time.Parse(dateLayout, c.SMARD.StartDate)
	return t.Year(), t.Month(), t.Day()
}
