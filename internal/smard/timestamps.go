package smard

import (
	"fmt"
	"time"
)

const (
	dayMillis  = 24 * 60 * 60 * 1000
	weekMillis = 7 * dayMillis
)

// berlin is the market's local zone; SMARD keys its weekly bundles by the
// millisecond timestamp of a Berlin-local Monday midnight.
var berlin = mustLoadBerlin()

func mustLoadBerlin() *time.Location {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic(fmt.Sprintf("load Europe/Berlin: %v", err))
	}
	return loc
}

// BerlinMidnightMillis returns the epoch milliseconds of Berlin-local
// midnight on the given calendar date.
func BerlinMidnightMillis(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, berlin).UnixMilli()
}

// MondayFloorUTC returns 00:00 UTC of the Monday of now's week.
func MondayFloorUTC(now time.Time) time.Time {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	// Go weekdays start at Sunday = 0; shift so Monday = 0.
	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

// WeeklyTimestamps enumerates bundle timestamps at fixed 7-day increments
// from anchor up to and including the Monday of now's week.
func WeeklyTimestamps(anchor int64, now time.Time) []int64 {
	limit := MondayFloorUTC(now).UnixMilli()

	var out []int64
	for ts := anchor; ts <= limit; ts += weekMillis {
		out = append(out, ts)
	}
	return out
}

// WeekFileName names a weekly CSV after its bundle's Berlin-local date,
// e.g. data_2025_09_01.csv.
func WeekFileName(ts int64) string {
	t := time.UnixMilli(ts).In(berlin)
	return fmt.Sprintf("data_%s.csv", t.Format("2006_01_02"))
}
