package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell2_Value(t *testing.T) {
	cell := NewCell2(1, 3, -2, 7)

	t.Run("origin corner is exact", func(t *testing.T) {
		assert.Equal(t, 1.0, cell.Value(0, 0))
	})

	t.Run("edges reduce to linear interpolation", func(t *testing.T) {
		assert.InDelta(t, 2.0, cell.Value(0.5, 0), 1e-12)
		assert.InDelta(t, -0.5, cell.Value(0, 0.5), 1e-12)
	})

	t.Run("approaches far corner", func(t *testing.T) {
		assert.InDelta(t, 7.0, cell.Value(0.999999, 0.999999), 1e-4)
	})

	t.Run("matches the four term weighted sum", func(t *testing.T) {
		for _, tx := range []float64{0, 0.25, 0.5, 0.75} {
			for _, tz := range []float64{0, 0.25, 0.5, 0.75} {
				want := 1*(1-tx)*(1-tz) + 3*tx*(1-tz) + -2*(1-tx)*tz + 7*tx*tz
				assert.InDelta(t, want, cell.Value(tx, tz), 1e-12, "tx=%v tz=%v", tx, tz)
			}
		}
	})

	t.Run("constant corners are constant everywhere", func(t *testing.T) {
		flat := NewCell2(4.2, 4.2, 4.2, 4.2)
		for _, tx := range []float64{0, 0.1, 0.5, 0.9} {
			for _, tz := range []float64{0, 0.3, 0.7, 0.99} {
				assert.Equal(t, 4.2, flat.Value(tx, tz))
			}
		}
	})
}

func TestCell2_LinearAlongEachAxis(t *testing.T) {
	cell := NewCell2(-3, 5, 11, 2)
	for _, fixed := range []float64{0, 0.25, 0.6} {
		// second differences vanish for a linear function
		a, b, c := cell.Value(0.1, fixed), cell.Value(0.4, fixed), cell.Value(0.7, fixed)
		assert.InDelta(t, 0, (c-b)-(b-a), 1e-12)

		a, b, c = cell.Value(fixed, 0.1), cell.Value(fixed, 0.4), cell.Value(fixed, 0.7)
		assert.InDelta(t, 0, (c-b)-(b-a), 1e-12)
	}
}

func TestCell3_Value(t *testing.T) {
	corners := [8]float64{1, 2, 3, 4, 5, 6, 7, 8}
	cell := NewCell3(corners[0], corners[1], corners[2], corners[3], corners[4], corners[5], corners[6], corners[7])

	assert.Equal(t, 1.0, cell.Value(0, 0, 0))
	assert.InDelta(t, 8.0, cell.Value(0.999999, 0.999999, 0.999999), 1e-4)

	weight := func(bit int, t float64) float64 {
		if bit == 1 {
			return t
		}
		return 1 - t
	}
	for _, tx := range []float64{0, 0.3, 0.8} {
		for _, ty := range []float64{0, 0.5, 0.9} {
			for _, tz := range []float64{0, 0.2, 0.75} {
				var want float64
				for i, v := range corners {
					want += v * weight(i&1, tx) * weight((i>>1)&1, ty) * weight((i>>2)&1, tz)
				}
				assert.InDelta(t, want, cell.Value(tx, ty, tz), 1e-12)
			}
		}
	}

	t.Run("constant corners are constant everywhere", func(t *testing.T) {
		flat := NewCell3(-1.5, -1.5, -1.5, -1.5, -1.5, -1.5, -1.5, -1.5)
		assert.Equal(t, -1.5, flat.Value(0.33, 0.66, 0.99))
		assert.Equal(t, -1.5, flat.Value(0.5, 0, 0.5))
	})

	t.Run("linear along y with x and z fixed", func(t *testing.T) {
		a, b, c := cell.Value(0.3, 0.1, 0.6), cell.Value(0.3, 0.4, 0.6), cell.Value(0.3, 0.7, 0.6)
		assert.InDelta(t, 0, (c-b)-(b-a), 1e-12)
	})
}

func TestLocate(t *testing.T) {
	t.Run("integer coordinates round trip", func(t *testing.T) {
		for x := 0; x < TileHeight; x++ {
			cell, frac := locate(float64(x))
			assert.GreaterOrEqual(t, frac, 0.0)
			assert.Less(t, frac, 1.0)
			assert.Equal(t, x, cell*Step+int(math.Floor(frac*Step)), "x=%d", x)
		}
	})

	tests := []struct {
		name     string
		v        float64
		wantCell int
		wantFrac float64
	}{
		{name: "cell start", v: 8, wantCell: 2, wantFrac: 0},
		{name: "fractional input", v: 5.5, wantCell: 1, wantFrac: 0.375},
		{name: "last unit of tile", v: 15.75, wantCell: 3, wantFrac: 0.9375},
		{name: "just past the tile", v: 16, wantCell: 4, wantFrac: 0},
		{name: "just before the tile", v: -0.5, wantCell: -1, wantFrac: 0.875},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, frac := locate(tt.v)
			assert.Equal(t, tt.wantCell, cell)
			assert.InDelta(t, tt.wantFrac, frac, 1e-12)
		})
	}
}
