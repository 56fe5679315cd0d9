package interp

// Cell2 holds the four corner values of one square lattice cell.
// Corners are stored in (origin, +x, +z, +x+z) order.
type Cell2 [4]float64

// NewCell2 returns a cell with the given corner values.
func NewCell2(v00, v10, v01, v11 float64) Cell2 {
	return Cell2{v00, v10, v01, v11}
}

// Value bilinearly interpolates the cell at fractional offsets tx, tz in [0,1).
func (c Cell2) Value(tx, tz float64) float64 {
	return lerp(lerp(c[0], c[1], tx), lerp(c[2], c[3], tx), tz)
}

// Cell3 holds the eight corner values of one lattice box. Corners are
// ordered with x varying fastest, then y, then z:
// (0,0,0) (1,0,0) (0,1,0) (1,1,0) (0,0,1) (1,0,1) (0,1,1) (1,1,1).
type Cell3 [8]float64

// NewCell3 returns a cell with the given corner values.
func NewCell3(v000, v100, v010, v110, v001, v101, v011, v111 float64) Cell3 {
	return Cell3{v000, v100, v010, v110, v001, v101, v011, v111}
}

// Value trilinearly interpolates the cell at fractional offsets in [0,1).
func (c Cell3) Value(tx, ty, tz float64) float64 {
	near := lerp(lerp(c[0], c[1], tx), lerp(c[2], c[3], tx), ty)
	far := lerp(lerp(c[4], c[5], tx), lerp(c[6], c[7], tx), ty)
	return lerp(near, far, tz)
}

// lerp returns a exactly at t == 0 and a exactly when a == b.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
