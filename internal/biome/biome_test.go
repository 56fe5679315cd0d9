package biome

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/interp/mocks"
	"github.com/VoidMesh/density/internal/noise"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Biome
		wantErr bool
	}{
		{name: "ocean", input: "ocean", want: Ocean},
		{name: "mixed case", input: "Mountains", want: Mountains},
		{name: "padded", input: " hills ", want: Hills},
		{name: "unknown", input: "desert", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownBiome)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}

	assert.Equal(t, []string{"hills", "mountains", "ocean", "plains"}, Names())
}

func TestBiome_DensityFallsWithHeight(t *testing.T) {
	src := noise.NewPerlin(7)

	for _, name := range Names() {
		b, err := Lookup(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			for _, col := range [][2]int{{0, 0}, {37, -91}, {-400, 512}} {
				below := b.Noise3D(src, nil, col[0], 0, col[1])
				above := b.Noise3D(src, nil, col[0], 255, col[1])
				assert.Greater(t, below, 0.0, "bedrock should be solid")
				assert.Less(t, above, 0.0, "sky should be empty")
			}
		})
	}
}

func TestBiome_HeightTracksBase(t *testing.T) {
	src := noise.NewSimplex(99)

	for x := -64; x < 64; x += 7 {
		h := Plains.Noise2D(src, x, x*3)
		assert.InDelta(t, Plains.BaseHeight, h, Plains.Amplitude)
	}
}

func TestClassifier_Resolve(t *testing.T) {
	c := NewClassifier(noise.NewPerlin(2024), 0)
	assert.Equal(t, DefaultScale, c.scale)

	for x := -2048; x < 2048; x += 97 {
		for z := -2048; z < 2048; z += 89 {
			g, err := c.Resolve(x, z, interp.PhaseBase)
			require.NoError(t, err)
			b, ok := g.(*Biome)
			require.True(t, ok)

			_, err = Lookup(b.Name)
			assert.NoError(t, err)

			again, err := c.Resolve(x, z, interp.PhaseBase)
			require.NoError(t, err)
			assert.Same(t, b, again, "classification must be deterministic")
		}
	}
}

func TestClassifier_NoSource(t *testing.T) {
	_, err := NewClassifier(nil, 10).Resolve(1, 2, interp.PhaseBase)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(1, 2)")
}

func TestFromElevation(t *testing.T) {
	tests := []struct {
		elevation float64
		want      *Biome
	}{
		{-0.9, Ocean},
		{-0.25, Plains},
		{0, Plains},
		{0.2, Hills},
		{0.4, Mountains},
		{1, Mountains},
	}
	for _, tt := range tests {
		assert.Same(t, tt.want, fromElevation(tt.elevation), "elevation %v", tt.elevation)
	}
}

func TestUniform(t *testing.T) {
	g, err := Uniform{Generator: Hills}.Resolve(5, 5, interp.PhasePopulate)
	require.NoError(t, err)
	assert.Same(t, Hills, g)

	_, err = Uniform{}.Resolve(0, 0, interp.PhaseBase)
	assert.ErrorIs(t, err, ErrUnknownBiome)
}

func TestCached_MemoisesPerColumnAndPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockClassifier(ctrl)

	next.EXPECT().Resolve(4, 8, interp.PhaseBase).Return(Plains, nil).Times(1)
	next.EXPECT().Resolve(4, 8, interp.PhasePopulate).Return(Hills, nil).Times(1)

	c := NewCached(next)
	for i := 0; i < 3; i++ {
		g, err := c.Resolve(4, 8, interp.PhaseBase)
		require.NoError(t, err)
		assert.Same(t, Plains, g)
	}
	g, err := c.Resolve(4, 8, interp.PhasePopulate)
	require.NoError(t, err)
	assert.Same(t, Hills, g)
}

func TestCached_DoesNotCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockClassifier(ctrl)
	boom := errors.New("transient")

	gomock.InOrder(
		next.EXPECT().Resolve(0, 0, interp.PhaseBase).Return(nil, boom),
		next.EXPECT().Resolve(0, 0, interp.PhaseBase).Return(Ocean, nil),
	)

	c := NewCached(next)
	_, err := c.Resolve(0, 0, interp.PhaseBase)
	assert.ErrorIs(t, err, boom)

	g, err := c.Resolve(0, 0, interp.PhaseBase)
	require.NoError(t, err)
	assert.Same(t, Ocean, g)
}

func TestCached_ConcurrentTiles(t *testing.T) {
	c := NewCached(NewClassifier(noise.NewSimplex(5), 64))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(tileX int) {
			defer wg.Done()
			_, err := interp.NewTile3(nil, tileX%3, 0, c, noise.NewSimplex(5))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}
