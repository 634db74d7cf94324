// Package dataset holds the timestamp-keyed table shared by the extractors
// and the merger, plus its CSV representation.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// TimeColumn is the join column shared by all produced CSV files.
const TimeColumn = "time_berlin"

// TimeLayout is the canonical cell format for the join column.
const TimeLayout = "2006-01-02 15:04:05"

// Row is one timestamped record. Cells are kept as raw CSV strings so that
// merging never reformats values written by an extractor.
type Row struct {
	Time  time.Time
	Cells map[string]string
}

// Table is a time-sorted set of rows with a fixed column order.
// Columns excludes the time column itself.
type Table struct {
	Columns []string
	Rows    []Row
}

// timeLayouts accepted when parsing the join column. Open-Meteo returns
// minute-resolution ISO timestamps; our own writers use TimeLayout.
var timeLayouts = []string{
	TimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTime parses a join-column cell.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a %s timestamp", s, TimeColumn)
}

// ReadCSV loads a table from path. The file must contain a time_berlin
// column whose cells parse as datetimes; a missing file surfaces the
// underlying not-found error.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: file is empty", path)
	}

	header := records[0]
	timeIdx := -1
	for i, name := range header {
		if name == TimeColumn {
			timeIdx = i
			break
		}
	}
	if timeIdx < 0 {
		return nil, fmt.Errorf("read %s: missing %q column", path, TimeColumn)
	}

	t := &Table{}
	for i, name := range header {
		if i != timeIdx {
			t.Columns = append(t.Columns, name)
		}
	}

	for line, rec := range records[1:] {
		ts, err := ParseTime(rec[timeIdx])
		if err != nil {
			return nil, fmt.Errorf("read %s: line %d: %w", path, line+2, err)
		}
		cells := make(map[string]string, len(t.Columns))
		for i, name := range header {
			if i == timeIdx {
				continue
			}
			cells[name] = rec[i]
		}
		t.Rows = append(t.Rows, Row{Time: ts, Cells: cells})
	}

	t.SortByTime()
	return t, nil
}

// WriteCSV writes the table to path, creating parent directories.
// The time column comes first, formatted with TimeLayout.
func (t *Table) WriteCSV(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := append([]string{TimeColumn}, t.Columns...)
	if err := w.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(header))
	for _, row := range t.Rows {
		rec[0] = row.Time.Format(TimeLayout)
		for i, name := range t.Columns {
			rec[i+1] = row.Cells[name]
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return w.Error()
}

// SortByTime orders rows ascending by timestamp.
func (t *Table) SortByTime() {
	sort.Slice(t.Rows, func(i, j int) bool {
		return t.Rows[i].Time.Before(t.Rows[j].Time)
	})
}
