package weather

import (
	"errors"
	"strconv"

	"github.com/Dattibou/Strommarkt-Analyse/internal/dataset"
)

// Output column names, units matching the source variables.
const (
	ColTemperature = "temperature_2m_°C"
	ColWindSpeed   = "wind_speed_100m_km/h"
	ColRadiation   = "shortwave_radiation_W/m²"
)

// ErrNoPointData is returned when no grid point contributed any series, so
// there is nothing to average over.
var ErrNoPointData = errors.New("no grid point data to average")

// accumulator collects per-timestamp sums for one variable. Nil samples
// (nulls in the source) are skipped per variable, so each mean divides by
// the count of points that actually reported that hour.
type accumulator struct {
	sum   float64
	count int
}

// Average computes the unweighted per-timestamp mean of each variable over
// all fetched grid points and returns it as a time-sorted table.
func Average(series []PointSeries) (*dataset.Table, error) {
	if len(series) == 0 {
		return nil, ErrNoPointData
	}

	type hourAcc struct {
		temp accumulator
		wind accumulator
		rad  accumulator
	}

	hours := make(map[string]*hourAcc)
	for _, s := range series {
		for i, raw := range s.Times {
			acc, ok := hours[raw]
			if !ok {
				acc = &hourAcc{}
				hours[raw] = acc
			}
			acc.temp.add(sample(s.TempC, i))
			acc.wind.add(sample(s.WindKMH, i))
			acc.rad.add(sample(s.RadiationW, i))
		}
	}
	if len(hours) == 0 {
		return nil, ErrNoPointData
	}

	t := &dataset.Table{Columns: []string{ColTemperature, ColWindSpeed, ColRadiation}}
	for raw, acc := range hours {
		ts, err := dataset.ParseTime(raw)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, dataset.Row{
			Time: ts,
			Cells: map[string]string{
				ColTemperature: acc.temp.mean(),
				ColWindSpeed:   acc.wind.mean(),
				ColRadiation:   acc.rad.mean(),
			},
		})
	}

	t.SortByTime()
	return t, nil
}

func sample(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func (a *accumulator) add(v *float64) {
	if v == nil {
		return
	}
	a.sum += *v
	a.count++
}

// mean formats the average, or an empty cell if no point reported the hour.
func (a *accumulator) mean() string {
	if a.count == 0 {
		return ""
	}
	return strconv.FormatFloat(a.sum/float64(a.count), 'f', -1, 64)
}
