package smard

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"time"

	"github.com/Dattibou/Strommarkt-Analyse/internal/dataset"
)

// CombinedFile is the single market CSV the merger consumes.
const CombinedFile = "combined_smard_data.csv"

// CombineWeeks concatenates every weekly data_*.csv in dir into one table
// keyed by time_berlin and writes it as combined_smard_data.csv. Duplicate
// timestamps across weeks collapse to the last file's value.
func CombineWeeks(dir string) error {
	pattern := filepath.Join(dir, "data_*.csv")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("smard: no weekly files matching %s", pattern)
	}
	sort.Strings(files)

	merged := make(map[int64]WeekRow)
	for _, file := range files {
		rows, err := ReadWeekCSV(file)
		if err != nil {
			return err
		}
		for _, r := range rows {
			merged[r.TS] = r
		}
	}

	keys := make([]int64, 0, len(merged))
	for ts := range merged {
		keys = append(keys, ts)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	t := &dataset.Table{Columns: []string{ColPrice, ColDemand}}
	for _, ts := range keys {
		r := merged[ts]
		t.Rows = append(t.Rows, dataset.Row{
			// The join column carries Berlin wall-clock time, parsed
			// zone-less on read, so render it in the Berlin zone here.
			Time: berlinWallClock(ts),
			Cells: map[string]string{
				ColPrice:  fmtValue(r.Price),
				ColDemand: fmtValue(r.Demand),
			},
		})
	}

	out := filepath.Join(dir, CombinedFile)
	if err := t.WriteCSV(out); err != nil {
		return err
	}

	log.Printf("[smard] combined %d weekly files into %d rows at %s", len(files), len(t.Rows), out)
	return nil
}

// berlinWallClock converts an epoch-millisecond timestamp to a zone-less
// time carrying the Berlin wall-clock fields, matching how time_berlin
// cells round-trip through dataset.ParseTime.
func berlinWallClock(ms int64) time.Time {
	b := time.UnixMilli(ms).In(berlin)
	return time.Date(b.Year(), b.Month(), b.Day(), b.Hour(), b.Minute(), b.Second(), 0, time.UTC)
}
