package smard

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dattibou/Strommarkt-Analyse/internal/dataset"
)

func TestCombineWeeks_ConcatenatesAndDeduplicates(t *testing.T) {
	dir := t.TempDir()

	week1 := BuildWeekRows(
		[]Point{{TS: 1756764000000, Value: 84.3}, {TS: 1756767600000, Value: 85}},
		[]Point{{TS: 1756764000000, Value: 51000}, {TS: 1756767600000, Value: 50000}},
	)
	require.NoError(t, WriteWeekCSV(filepath.Join(dir, "data_2025_09_02.csv"), week1))

	// Second week overlaps the first hour; its value must win.
	week2 := BuildWeekRows(
		[]Point{{TS: 1756767600000, Value: 99}, {TS: 1757368800000, Value: 70}},
		[]Point{{TS: 1756767600000, Value: 48000}, {TS: 1757368800000, Value: 47000}},
	)
	require.NoError(t, WriteWeekCSV(filepath.Join(dir, "data_2025_09_09.csv"), week2))

	require.NoError(t, CombineWeeks(dir))

	tbl, err := dataset.ReadCSV(filepath.Join(dir, CombinedFile))
	require.NoError(t, err)

	assert.Equal(t, []string{ColPrice, ColDemand}, tbl.Columns)
	require.Len(t, tbl.Rows, 3)

	// 1756764000000 ms = 2025-09-02 00:00 Berlin.
	assert.Equal(t, "2025-09-02 00:00:00", tbl.Rows[0].Time.Format(dataset.TimeLayout))
	assert.Equal(t, "84.30", tbl.Rows[0].Cells[ColPrice])

	assert.Equal(t, "99.00", tbl.Rows[1].Cells[ColPrice], "later file wins on duplicate timestamps")
	assert.Equal(t, "48000.00", tbl.Rows[1].Cells[ColDemand])

	assert.Equal(t, "70.00", tbl.Rows[2].Cells[ColPrice])
}

func TestCombineWeeks_NoFilesIsError(t *testing.T) {
	err := CombineWeeks(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no weekly files")
}

func TestBerlinWallClock(t *testing.T) {
	// 22:00 UTC during CEST is midnight Berlin wall-clock time.
	ms := time.Date(2025, 9, 1, 22, 0, 0, 0, time.UTC).UnixMilli()
	got := berlinWallClock(ms)
	assert.Equal(t, "2025-09-02 00:00:00", got.Format(dataset.TimeLayout))
}
