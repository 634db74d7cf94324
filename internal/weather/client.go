package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HourlyVariables is the variable list requested per grid point, in the
// order the columns appear in the output CSV.
const HourlyVariables = "temperature_2m,wind_speed_100m,shortwave_radiation"

// Timezone for all requested series. The join column of every CSV this
// project writes is Berlin local time.
const Timezone = "Europe/Berlin"

// PointSeries holds the hourly parallel arrays returned for one grid point.
// Variable entries are pointers because the archive reports nulls for hours
// without a reading.
type PointSeries struct {
	Point      GridPoint
	Times      []string
	TempC      []*float64
	WindKMH    []*float64
	RadiationW []*float64
}

// Client fetches hourly archive data from the Open-Meteo API.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient creates an archive API client. If baseURL is empty, defaults to
// the public Open-Meteo archive endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://archive-api.open-meteo.com/v1/archive"
	}
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchPoint requests the hourly series for one grid point over the given
// date range (YYYY-MM-DD, inclusive).
func (c *Client) FetchPoint(ctx context.Context, pt GridPoint, startDate, endDate string) (PointSeries, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(pt.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(pt.Lon, 'f', -1, 64))
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	q.Set("hourly", HourlyVariables)
	q.Set("timezone", Timezone)

	u := fmt.Sprintf("%s?%s", c.BaseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return PointSeries{}, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return PointSeries{}, fmt.Errorf("fetch point %.1f,%.1f: %w", pt.Lat, pt.Lon, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PointSeries{}, fmt.Errorf("fetch point %.1f,%.1f: status %d", pt.Lat, pt.Lon, resp.StatusCode)
	}

	var payload struct {
		Hourly struct {
			Time               []string   `json:"time"`
			Temperature2m      []*float64 `json:"temperature_2m"`
			WindSpeed100m      []*float64 `json:"wind_speed_100m"`
			ShortwaveRadiation []*float64 `json:"shortwave_radiation"`
		} `json:"hourly"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return PointSeries{}, fmt.Errorf("fetch point %.1f,%.1f: decode: %w", pt.Lat, pt.Lon, err)
	}

	log.Printf("[weather] fetched %d hours for %.1f,%.1f", len(payload.Hourly.Time), pt.Lat, pt.Lon)

	return PointSeries{
		Point:      pt,
		Times:      payload.Hourly.Time,
		TempC:      payload.Hourly.Temperature2m,
		WindKMH:    payload.Hourly.WindSpeed100m,
		RadiationW: payload.Hourly.ShortwaveRadiation,
	}, nil
}
