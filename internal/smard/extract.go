package smard

import (
	"context"
	"log"
	"path/filepath"
	"time"
)

// DefaultProbeDays bounds the backward search for the anchor dataset.
const DefaultProbeDays = 14

// Extract resolves the newest weekly bundle at or before the given start
// date, enumerates all weekly bundles from there to the current week and
// writes one CSV per week into dir. A week is skipped with a warning
// unless both its price and demand series fetch successfully.
func Extract(ctx context.Context, c *Client, year int, month time.Month, day int, probeDays int, dir string) error {
	if probeDays <= 0 {
		probeDays = DefaultProbeDays
	}

	startTS := BerlinMidnightMillis(year, month, day)
	anchor, err := c.FindLatestDataset(ctx, startTS, probeDays)
	if err != nil {
		return err
	}

	weeks := WeeklyTimestamps(anchor, time.Now())
	log.Printf("[smard] fetching %d weekly bundles from anchor %d", len(weeks), anchor)

	written := 0
	for _, ts := range weeks {
		path := filepath.Join(dir, WeekFileName(ts))

		price, err := c.FetchSeries(ctx, PriceFilter, ts)
		if err != nil {
			log.Printf("[smard] skipping week %s: price fetch failed: %v", WeekFileName(ts), err)
			continue
		}
		demand, err := c.FetchSeries(ctx, DemandFilter, ts)
		if err != nil {
			log.Printf("[smard] skipping week %s: demand fetch failed: %v", WeekFileName(ts), err)
			continue
		}

		rows := BuildWeekRows(price, demand)
		if err := WriteWeekCSV(path, rows); err != nil {
			return err
		}
		written++
		log.Printf("[smard] wrote %d rows to %s", len(rows), path)
	}

	log.Printf("[smard] wrote %d of %d weekly bundles", written, len(weeks))
	return nil
}
