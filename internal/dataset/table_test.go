package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseTime_Layouts(t *testing.T) {
	want := time.Date(2025, 9, 1, 14, 0, 0, 0, time.UTC)

	for _, s := range []string{
		"2025-09-01 14:00:00",
		"2025-09-01T14:00:00",
		"2025-09-01T14:00",
	} {
		got, err := ParseTime(s)
		require.NoError(t, err, s)
		assert.True(t, got.Equal(want), s)
	}

	_, err := ParseTime("01.09.2025 14:00")
	assert.Error(t, err)
}

func TestTable_CSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	in := &Table{
		Columns: []string{"price (MWh)", "demand (MW)"},
		Rows: []Row{
			{Time: ts("2025-09-01 00:00:00"), Cells: map[string]string{"price (MWh)": "84.30", "demand (MW)": "51000.25"}},
			{Time: ts("2025-09-01 01:00:00"), Cells: map[string]string{"price (MWh)": "-5.00", "demand (MW)": "49876.00"}},
		},
	}
	require.NoError(t, in.WriteCSV(path))

	out, err := ReadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, in.Columns, out.Columns)
	require.Len(t, out.Rows, 2)
	for i := range in.Rows {
		assert.True(t, out.Rows[i].Time.Equal(in.Rows[i].Time))
		assert.Equal(t, in.Rows[i].Cells, out.Rows[i].Cells)
	}
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestReadCSV_MissingTimeColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("timestamp,price\n1,2\n"), 0o644))

	_, err := ReadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), TimeColumn)
}

func TestReadCSV_SortsByTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unsorted.csv")
	content := "time_berlin,v\n" +
		"2025-09-01 02:00:00,2\n" +
		"2025-09-01 00:00:00,0\n" +
		"2025-09-01 01:00:00,1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tbl, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 3)
	for i, want := range []string{"0", "1", "2"} {
		assert.Equal(t, want, tbl.Rows[i].Cells["v"])
	}
}
