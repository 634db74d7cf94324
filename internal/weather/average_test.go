package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestAverage_MeanAcrossPoints(t *testing.T) {
	series := []PointSeries{
		{
			Times:      []string{"2025-09-01T00:00", "2025-09-01T01:00"},
			TempC:      []*float64{fp(10), fp(12)},
			WindKMH:    []*float64{fp(20), fp(22)},
			RadiationW: []*float64{fp(0), fp(100)},
		},
		{
			Times:      []string{"2025-09-01T00:00", "2025-09-01T01:00"},
			TempC:      []*float64{fp(14), fp(16)},
			WindKMH:    []*float64{fp(30), fp(26)},
			RadiationW: []*float64{fp(0), fp(200)},
		},
	}

	tbl, err := Average(series)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)

	assert.Equal(t, "12", tbl.Rows[0].Cells[ColTemperature])
	assert.Equal(t, "25", tbl.Rows[0].Cells[ColWindSpeed])
	assert.Equal(t, "0", tbl.Rows[0].Cells[ColRadiation])

	assert.Equal(t, "14", tbl.Rows[1].Cells[ColTemperature])
	assert.Equal(t, "24", tbl.Rows[1].Cells[ColWindSpeed])
	assert.Equal(t, "150", tbl.Rows[1].Cells[ColRadiation])
}

func TestAverage_NullSamplesSkippedPerVariable(t *testing.T) {
	series := []PointSeries{
		{
			Times:      []string{"2025-09-01T00:00"},
			TempC:      []*float64{fp(10)},
			WindKMH:    []*float64{nil},
			RadiationW: []*float64{fp(50)},
		},
		{
			Times:      []string{"2025-09-01T00:00"},
			TempC:      []*float64{fp(20)},
			WindKMH:    []*float64{fp(18)},
			RadiationW: []*float64{nil},
		},
	}

	tbl, err := Average(series)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)

	// Temperature averages both points, wind and radiation only the one
	// that reported.
	assert.Equal(t, "15", tbl.Rows[0].Cells[ColTemperature])
	assert.Equal(t, "18", tbl.Rows[0].Cells[ColWindSpeed])
	assert.Equal(t, "50", tbl.Rows[0].Cells[ColRadiation])
}

func TestAverage_NoPointsIsError(t *testing.T) {
	_, err := Average(nil)
	require.ErrorIs(t, err, ErrNoPointData)

	_, err = Average([]PointSeries{})
	require.ErrorIs(t, err, ErrNoPointData)
}

func TestAverage_SortedByTime(t *testing.T) {
	series := []PointSeries{{
		Times:      []string{"2025-09-01T02:00", "2025-09-01T00:00", "2025-09-01T01:00"},
		TempC:      []*float64{fp(3), fp(1), fp(2)},
		WindKMH:    []*float64{fp(3), fp(1), fp(2)},
		RadiationW: []*float64{fp(3), fp(1), fp(2)},
	}}

	tbl, err := Average(series)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 3)
	for i, want := range []string{"1", "2", "3"} {
		assert.Equal(t, want, tbl.Rows[i].Cells[ColTemperature])
	}
}
