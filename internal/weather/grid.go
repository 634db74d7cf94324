package weather

// BoundingBox is a lat/lon rectangle. Max bounds are exclusive for grid
// generation, matching the 2-degree sampling of the source data.
type BoundingBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// GridPoint is a single sample location used to approximate an
// area-averaged weather value.
type GridPoint struct {
	Lat float64
	Lon float64
}

// GridStep is the sampling distance in degrees.
const GridStep = 2.0

// Grid generates sample points over box at GridStep intervals, starting at
// the minimum corner with an exclusive upper bound on both axes.
func Grid(box BoundingBox) []GridPoint {
	var points []GridPoint
	for lat := box.LatMin; lat < box.LatMax; lat += GridStep {
		for lon := box.LonMin; lon < box.LonMax; lon += GridStep {
			points = append(points, GridPoint{Lat: lat, Lon: lon})
		}
	}
	return points
}
