// Package smard fetches weekly electricity-market bundles from the SMARD
// chart-data API and assembles them into per-week CSV files.
package smard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Series filters and parameters used by the pipeline. See the SMARD API
// documentation: https://smard.api.bund.dev/
const (
	PriceFilter  = 4169 // wholesale price, EUR/MWh
	DemandFilter = 410  // grid load, MW

	DefaultRegion     = "DE"
	DefaultResolution = "hour"
)

// Point is a single (timestamp, value) sample of a series. Timestamps are
// epoch milliseconds.
type Point struct {
	TS    int64
	Value float64
}

// APIError represents a non-200 response from the SMARD API.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("smard: status %d for %s", e.StatusCode, e.URL)
}

// Client fetches chart data from the SMARD API.
type Client struct {
	BaseURL    string
	Region     string
	Resolution string
	Client     *http.Client
}

// NewClient creates a SMARD client. Empty parameters fall back to the
// public endpoint, region DE and hourly resolution.
func NewClient(baseURL, region, resolution string) *Client {
	if baseURL == "" {
		baseURL = "https://www.smard.de/app/chart_data"
	}
	if region == "" {
		region = DefaultRegion
	}
	if resolution == "" {
		resolution = DefaultResolution
	}
	return &Client{
		BaseURL:    baseURL,
		Region:     region,
		Resolution: resolution,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) seriesURL(filter int, ts int64) string {
	return fmt.Sprintf("%s/%d/%s/%d_%s_%s_%d.json",
		c.BaseURL, filter, c.Region, filter, c.Region, c.Resolution, ts)
}

// FetchSeries fetches one weekly series. Null samples are dropped so the
// caller only sees published values.
func (c *Client) FetchSeries(ctx context.Context, filter int, ts int64) ([]Point, error) {
	u := c.seriesURL(filter, ts)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("smard: fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, URL: u}
	}

	var payload struct {
		Series [][]*float64 `json:"series"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("smard: decode %s: %w", u, err)
	}

	points := make([]Point, 0, len(payload.Series))
	for _, pair := range payload.Series {
		if len(pair) < 2 || pair[0] == nil || pair[1] == nil {
			continue
		}
		points = append(points, Point{TS: int64(*pair[0]), Value: *pair[1]})
	}
	return points, nil
}

// FindLatestDataset probes backward from startTS one day at a time, up to
// maxDaysBack days, and returns the first timestamp the API answers with
// 200 (the anchor). A non-200 just means the bundle for that day does not
// exist; running out of days is an error.
func (c *Client) FindLatestDataset(ctx context.Context, startTS int64, maxDaysBack int) (int64, error) {
	for i := 0; i < maxDaysBack; i++ {
		ts := startTS - int64(i)*dayMillis
		u := c.seriesURL(DemandFilter, ts)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return 0, err
		}
		resp, err := c.Client.Do(req)
		if err != nil {
			return 0, fmt.Errorf("smard: probe %s: %w", u, err)
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			log.Printf("[smard] anchor dataset found at %d (%d days back)", ts, i)
			return ts, nil
		}
	}
	return 0, fmt.Errorf("smard: no dataset found in the last %d days", maxDaysBack)
}
