package interp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/interp/mocks"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    interp.Mode
		wantErr bool
	}{
		{name: "bilinear", input: "bilinear", want: interp.Bilinear},
		{name: "trilinear upper case", input: "TRILINEAR", want: interp.Trilinear},
		{name: "2d alias", input: " 2d ", want: interp.Bilinear},
		{name: "3d alias", input: "3D", want: interp.Trilinear},
		{name: "unknown", input: "bicubic", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interp.ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, interp.ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) interp.Mode {
	t.Helper()
	m, err := interp.ParseMode(s)
	require.NoError(t, err)
	return m
}

func TestMode_NewBilinear(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := mocks.NewMockNoiseSource(ctrl)
	gen := mocks.NewMockGenerator(ctrl)
	classifier := mocks.NewMockClassifier(ctrl)

	classifier.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), interp.PhaseBase).
		Return(gen, nil).
		Times(64)
	gen.EXPECT().
		Noise2D(src, gomock.Any(), gomock.Any()).
		Return(1.5).
		Times(256)

	tile, err := interp.Bilinear.New(nil, 0, 0, classifier, src)
	require.NoError(t, err)
	require.IsType(t, &interp.Tile2{}, tile)

	assert.Equal(t, 3.0, tile.Value(9, 9))
	assert.Equal(t, 3.0, tile.Value3(0, 128, 15))
}

func TestMode_NewTrilinear(t *testing.T) {
	ctrl := gomock.NewController(t)

	src := mocks.NewMockNoiseSource(ctrl)
	world := mocks.NewMockWorld(ctrl)
	gen := mocks.NewMockGenerator(ctrl)
	classifier := mocks.NewMockClassifier(ctrl)

	classifier.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), interp.PhaseBase).
		Return(gen, nil).
		Times(64)
	gen.EXPECT().
		Noise3D(src, world, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interp.NoiseSource, _ interp.World, _, y, _ int) float64 {
			return float64(y) / 2
		}).
		Times(64 * 65)

	tile, err := interp.Trilinear.New(world, 2, 3, classifier, src)
	require.NoError(t, err)
	require.IsType(t, &interp.Tile3{}, tile)

	assert.InDelta(t, 50.0, tile.Value3(5, 100, 5), 1e-9)
	assert.InDelta(t, 0.0, tile.Value(5, 5), 1e-9)
}

func TestMode_NewErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	boom := errors.New("classifier offline")

	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, boom).
		Times(2)

	for _, mode := range []interp.Mode{interp.Bilinear, interp.Trilinear} {
		t.Run(mode.String(), func(t *testing.T) {
			tile, err := mode.New(nil, 0, 0, classifier, nil)
			assert.Nil(t, tile)
			assert.ErrorIs(t, err, boom)
		})
	}

	t.Run("unknown mode", func(t *testing.T) {
		tile, err := interp.Mode(7).New(nil, 0, 0, classifier, nil)
		assert.Nil(t, tile)
		assert.ErrorIs(t, err, interp.ErrUnknownMode)
		assert.Contains(t, err.Error(), "mode(7)")
	})
}

func BenchmarkTile3_Build(b *testing.B) {
	classifier := flatClassifier{}
	for i := 0; i < b.N; i++ {
		if _, err := interp.NewTile3(nil, i, -i, classifier, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTile3_Value3(b *testing.B) {
	tile, err := interp.NewTile3(nil, 0, 0, flatClassifier{}, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tile.Value3(float64(i%16), float64(i%256), float64((i/16)%16))
	}
}

type flatClassifier struct{}

func (flatClassifier) Resolve(int, int, interp.Phase) (interp.Generator, error) {
	return flatGen{}, nil
}

type flatGen struct{}

func (flatGen) Noise2D(interp.NoiseSource, int, int) float64 { return 0 }
func (flatGen) Noise3D(_ interp.NoiseSource, _ interp.World, _, y, _ int) float64 {
	return 64 - float64(y)
}
