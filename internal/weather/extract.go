package weather

import (
	"context"
	"log"
	"path/filepath"
)

// OutputFile is the name of the averaged weather CSV inside the weather
// data directory.
const OutputFile = "weather_avg_data.csv"

// Extract fetches every grid point of box sequentially, averages the
// successful points and writes the result to dir/weather_avg_data.csv.
// A failed point is logged and excluded; the run only fails when no point
// succeeds at all.
func Extract(ctx context.Context, c *Client, box BoundingBox, startDate, endDate, dir string) error {
	points := Grid(box)
	log.Printf("[weather] fetching %d grid points from %s to %s", len(points), startDate, endDate)

	var series []PointSeries
	for _, pt := range points {
		s, err := c.FetchPoint(ctx, pt, startDate, endDate)
		if err != nil {
			log.Printf("[weather] point %.1f,%.1f failed, excluding from average: %v", pt.Lat, pt.Lon, err)
			continue
		}
		series = append(series, s)
	}

	avg, err := Average(series)
	if err != nil {
		return err
	}

	out := filepath.Join(dir, OutputFile)
	if err := avg.WriteCSV(out); err != nil {
		return err
	}

	log.Printf("[weather] wrote %d rows (%d/%d points) to %s", len(avg.Rows), len(series), len(points), out)
	return nil
}
