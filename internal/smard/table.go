package smard

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// Week CSV column names. The raw millisecond timestamp is kept alongside
// the human-readable Berlin datetime so weekly files remain joinable on
// either key.
const (
	ColTimestamp = "timestamp"
	ColDatetime  = "datetime_berlin"
	ColPrice     = "price (MWh)"
	ColDemand    = "demand (MW)"
)

// datetimeLayout matches the dataset join-column format.
const datetimeLayout = "2006-01-02 15:04:05"

// WeekRow is one hour of a weekly bundle. Price and Demand are nil when
// the series had no published value for that hour.
type WeekRow struct {
	TS     int64
	Price  *float64
	Demand *float64
}

// BuildWeekRows groups the price and demand series by timestamp into one
// wide table, sorted ascending.
func BuildWeekRows(price, demand []Point) []WeekRow {
	byTS := make(map[int64]*WeekRow)
	rowFor := func(ts int64) *WeekRow {
		r, ok := byTS[ts]
		if !ok {
			r = &WeekRow{TS: ts}
			byTS[ts] = r
		}
		return r
	}

	for _, p := range price {
		v := p.Value
		rowFor(p.TS).Price = &v
	}
	for _, d := range demand {
		v := d.Value
		rowFor(d.TS).Demand = &v
	}

	rows := make([]WeekRow, 0, len(byTS))
	for _, r := range byTS {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TS < rows[j].TS })
	return rows
}

// WriteWeekCSV writes one weekly bundle. Values are formatted to two
// decimal places; missing values become empty cells.
func WriteWeekCSV(path string, rows []WeekRow) error {
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

	if err := w.Write([]string{ColTimestamp, ColDatetime, ColPrice, ColDemand}); err != nil {
		return err
	}

	for _, r := range rows {
		rec := []string{
			strconv.FormatInt(r.TS, 10),
			time.UnixMilli(r.TS).In(berlin).Format(datetimeLayout),
			fmtValue(r.Price),
			fmtValue(r.Demand),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// ReadWeekCSV reads a file written by WriteWeekCSV back into rows.
func ReadWeekCSV(path string) ([]WeekRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: file is empty", path)
	}

	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[name] = i
	}
	for _, name := range []string{ColTimestamp, ColPrice, ColDemand} {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("read %s: missing %q column", path, name)
		}
	}

	var rows []WeekRow
	for line, rec := range records[1:] {
		ts, err := strconv.ParseInt(rec[idx[ColTimestamp]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("read %s: line %d: %w", path, line+2, err)
		}
		row := WeekRow{TS: ts}
		if row.Price, err = parseValue(rec[idx[ColPrice]]); err != nil {
			return nil, fmt.Errorf("read %s: line %d: %w", path, line+2, err)
		}
		if row.Demand, err = parseValue(rec[idx[ColDemand]]); err != nil {
			return nil, fmt.Errorf("read %s: line %d: %w", path, line+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseValue(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
