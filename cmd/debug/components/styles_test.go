package components

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRampIndex(t *testing.T) {
	last := len(DensityRamp) - 1

	tests := []struct {
		name   string
		v      float64
		lo, hi float64
		want   int
	}{
		{name: "low end", v: -1, lo: -1, hi: 1, want: 0},
		{name: "high end", v: 1, lo: -1, hi: 1, want: last},
		{name: "below range clamps", v: -50, lo: 0, hi: 10, want: 0},
		{name: "above range clamps", v: 50, lo: 0, hi: 10, want: last},
		{name: "midpoint", v: 5, lo: 0, hi: 10, want: int(math.Round(float64(last) / 2))},
		{name: "degenerate range", v: 3, lo: 3, hi: 3, want: last / 2},
		{name: "nan", v: math.NaN(), lo: 0, hi: 1, want: last / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RampIndex(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestDensityColorAndSymbol(t *testing.T) {
	assert.Equal(t, DensityRamp[0], DensityColor(0, 0, 1))
	assert.Equal(t, DensityRamp[len(DensityRamp)-1], DensityColor(1, 0, 1))

	assert.Equal(t, SolidSymbol, DensitySymbol(0.01))
	assert.Equal(t, AirSymbol, DensitySymbol(0))
	assert.Equal(t, AirSymbol, DensitySymbol(-3))
}
