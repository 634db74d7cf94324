package dataset

import (
	"fmt"
	"log"
	"os"
)

// rowsByTime indexes rows by their Unix timestamp. Duplicate timestamps
// collapse to the last row, matching the extractors' last-writer behaviour.
func rowsByTime(t *Table) map[int64]Row {
	m := make(map[int64]Row, len(t.Rows))
	for _, r := range t.Rows {
		m[r.Time.Unix()] = r
	}
	return m
}

// Merge outer-joins two tables on the time column, sorted ascending, then
// drops every row with a missing cell in any column. Timestamps present in
// only one input therefore never survive. Column order is left then right.
func Merge(left, right *Table) *Table {
	columns := append(append([]string{}, left.Columns...), right.Columns...)

	leftByTime := rowsByTime(left)
	rightByTime := rowsByTime(right)

	// Union of timestamps for the outer join.
	seen := make(map[int64]bool)
	var times []int64
	for _, r := range left.Rows {
		if k := r.Time.Unix(); !seen[k] {
			seen[k] = true
			times = append(times, k)
		}
	}
	for _, r := range right.Rows {
		if k := r.Time.Unix(); !seen[k] {
			seen[k] = true
			times = append(times, k)
		}
	}

	out := &Table{Columns: columns}
	for _, k := range times {
		l, lok := leftByTime[k]
		r, rok := rightByTime[k]
		if !lok || !rok {
			continue
		}
		cells := make(map[string]string, len(columns))
		complete := true
		for _, name := range left.Columns {
			v := l.Cells[name]
			if v == "" {
				complete = false
				break
			}
			cells[name] = v
		}
		if complete {
			for _, name := range right.Columns {
				v := r.Cells[name]
				if v == "" {
					complete = false
					break
				}
				cells[name] = v
			}
		}
		if !complete {
			continue
		}
		out.Rows = append(out.Rows, Row{Time: l.Time, Cells: cells})
	}

	out.SortByTime()
	return out
}

// MergeFiles reads the combined market CSV and the averaged weather CSV,
// merges them and writes the result. Either input being absent is fatal.
func MergeFiles(marketPath, weatherPath, outPath string) error {
	if _, err := os.Stat(marketPath); err != nil {
		return fmt.Errorf("market data: %w", err)
	}
	if _, err := os.Stat(weatherPath); err != nil {
		return fmt.Errorf("weather data: %w", err)
	}

	market, err := ReadCSV(marketPath)
	if err != nil {
		return err
	}
	weather, err := ReadCSV(weatherPath)
	if err != nil {
		return err
	}

	merged := Merge(market, weather)
	if err := merged.WriteCSV(outPath); err != nil {
		return err
	}

	log.Printf("[merge] wrote %d rows (%d market, %d weather) to %s",
		len(merged.Rows), len(market.Rows), len(weather.Rows), outPath)
	return nil
}
