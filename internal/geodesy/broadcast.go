package geodesy

// Slice forms of the scalar functions. The reference point stays scalar while
// the target coordinates vary, matching how simulation post-processing calls
// these: one gauge or storm center against a whole grid of points.

// HaversineSlice computes great-circle distances from the scalar point
// (x0, y0) to each (x1[i], y1[i]).
func HaversineSlice(x0, y0 float64, x1, y1 []float64, units Unit) ([]float64, error) {
	if len(x1) != len(y1) {
		return nil, shapeErr(len(x1), len(y1))
	}
	if !units.valid() {
		return nil, unitsErr(units)
	}

	out := make([]float64, len(x1))
	for i := range x1 {
		d, err := Haversine(x0, y0, x1[i], y1[i], units)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// BearingSlice computes initial bearings from the scalar point (x0, y0) to
// each (x1[i], y1[i]).
func BearingSlice(x0, y0 float64, x1, y1 []float64, units, bearingUnits Unit) ([]float64, error) {
	if len(x1) != len(y1) {
		return nil, shapeErr(len(x1), len(y1))
	}
	if !units.valid() {
		return nil, unitsErr(units)
	}
	if !bearingUnits.valid() {
		return nil, unitsErr(bearingUnits)
	}

	out := make([]float64, len(x1))
	for i := range x1 {
		b, err := Bearing(x0, y0, x1[i], y1[i], units, bearingUnits)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// InvHaversineSlice solves for the longitudinal offset for each distance
// d[i] paired with target latitude y2[i], from the scalar reference (x1, y1).
// Entries with no real solution come back NaN.
func InvHaversineSlice(d []float64, x1, y1 float64, y2 []float64, rsphere float64, units Unit) ([]float64, error) {
	if len(d) != len(y2) {
		return nil, shapeErr(len(d), len(y2))
	}
	if !units.valid() {
		return nil, unitsErr(units)
	}

	out := make([]float64, len(d))
	for i := range d {
		dx, err := InvHaversine(d[i], x1, y1, y2[i], rsphere, units)
		if err != nil {
			return nil, err
		}
		out[i] = dx
	}
	return out, nil
}

// DistLatLong2MetersSlice converts paired degree displacements to meters.
func DistLatLong2MetersSlice(dx, dy []float64, latitude float64) (dxm, dym []float64, err error) {
	if len(dx) != len(dy) {
		return nil, nil, shapeErr(len(dx), len(dy))
	}

	dxm = make([]float64, len(dx))
	dym = make([]float64, len(dx))
	for i := range dx {
		dxm[i], dym[i] = DistLatLong2Meters(dx[i], dy[i], latitude)
	}
	return dxm, dym, nil
}

// DistMeters2LatLongSlice converts paired meter displacements to degrees.
func DistMeters2LatLongSlice(dx, dy []float64, latitude float64) (dxd, dyd []float64, err error) {
	if len(dx) != len(dy) {
		return nil, nil, shapeErr(len(dx), len(dy))
	}

	dxd = make([]float64, len(dx))
	dyd = make([]float64, len(dx))
	for i := range dx {
		dxd[i], dyd[i] = DistMeters2LatLong(dx[i], dy[i], latitude)
	}
	return dxd, dyd, nil
}
