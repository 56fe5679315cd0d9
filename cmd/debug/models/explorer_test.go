package models

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/density/internal/biome"
	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/sampler"
	"github.com/VoidMesh/density/internal/testutil"
)

// slopeGen is solid below y = 64 and rises eastwards in 2D.
type slopeGen struct{}

func (slopeGen) Noise2D(_ interp.NoiseSource, x, _ int) float64 { return float64(x) }
func (slopeGen) Noise3D(_ interp.NoiseSource, _ interp.World, _, y, _ int) float64 {
	return 64 - float64(y)
}

type failingSampler struct{ mode interp.Mode }

func (f failingSampler) Mode() interp.Mode { return f.mode }
func (f failingSampler) Sample(context.Context, int, int) (*sampler.Snapshot, error) {
	return nil, errors.New("classifier offline")
}

func newSampler(t *testing.T, mode interp.Mode) *sampler.Service {
	t.Helper()
	svc, err := sampler.NewServiceWithDefaultLogger(sampler.Options{
		Mode:       mode,
		Classifier: biome.Uniform{Generator: slopeGen{}},
	})
	require.NoError(t, err)
	return svc
}

// load runs the explorer's sampling command and feeds the result back.
func load(t *testing.T, m TileExplorerModel) TileExplorerModel {
	t.Helper()
	msg := m.loadSnapshotCmd()()
	next, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	return next.(TileExplorerModel)
}

func TestTileExplorer_LayerStats(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	m := NewTileExplorerModel(newSampler(t, interp.Trilinear), 0, 0)
	_, ok := m.Stats()
	assert.False(t, ok)

	m = load(t, m)
	require.NotNil(t, m.snapshot)

	m.layer = 10
	stats, ok := m.Stats()
	require.True(t, ok)
	assert.InDelta(t, 54, stats.Mean, 1e-9)
	assert.Equal(t, 1.0, stats.Solid)

	m.layer = 200
	stats, _ = m.Stats()
	assert.Equal(t, 0.0, stats.Solid)
	assert.InDelta(t, stats.Min, stats.Max, 1e-9)
}

func TestTileExplorer_Navigation(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	m := NewTileExplorerModel(newSampler(t, interp.Trilinear), 2, -1)
	assert.Equal(t, interp.TileHeight/4, m.layer)

	m.shiftLayer(-1000)
	assert.Equal(t, 0, m.layer)
	m.shiftLayer(1000)
	assert.Equal(t, interp.TileHeight-1, m.layer)

	for i := 0; i < 40; i++ {
		m.moveCursor(1, -1)
	}
	assert.Equal(t, interp.TileSize-1, m.cursorX)
	assert.Equal(t, 0, m.cursorZ)

	next, cmd := m.moveTile(1, 1)
	require.NotNil(t, cmd)
	moved := next.(TileExplorerModel)
	assert.Equal(t, 3, moved.tileX)
	assert.Equal(t, 0, moved.tileZ)
	assert.True(t, moved.isLoading)

	loaded, _ := moved.Update(cmd())
	snap := loaded.(TileExplorerModel).snapshot
	require.NotNil(t, snap)
	assert.Equal(t, 3, snap.TileX)
	assert.Equal(t, 0, snap.TileZ)
}

func TestTileExplorer_BilinearIgnoresLayer(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	m := NewTileExplorerModel(newSampler(t, interp.Bilinear), 0, 0)
	m.shiftLayer(10)
	assert.Equal(t, 0, m.layer)

	m = load(t, m)
	stats, ok := m.Stats()
	require.True(t, ok)
	assert.Less(t, stats.Min, stats.Max, "slope generator varies along x")
}

func TestTileExplorer_View(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	m := NewTileExplorerModel(newSampler(t, interp.Trilinear), 5, 6)
	assert.Equal(t, "Initializing...", m.View())

	m.SetSize(120, 40)
	assert.Contains(t, m.View(), "Sampling tile...")

	m = load(t, m)
	view := m.View()
	assert.Contains(t, view, "Tile Explorer - (5, 6) trilinear y=64")
	assert.Contains(t, view, "World: (88, 104)")
	assert.Contains(t, view, m.snapshot.ID.String()[:8])
}

func TestTileExplorer_SampleError(t *testing.T) {
	m := NewTileExplorerModel(failingSampler{mode: interp.Bilinear}, 0, 0)
	m.SetSize(100, 30)

	m = load(t, m)
	assert.Nil(t, m.snapshot)
	assert.Equal(t, "classifier offline", m.errorMsg)
	assert.Contains(t, m.View(), "Error: classifier offline")
}

func TestTileExplorer_DropsStaleSnapshots(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	m := NewTileExplorerModel(newSampler(t, interp.Bilinear), 0, 0)
	staleCmd := m.loadSnapshotCmd()

	next, freshCmd := m.moveTile(1, 0)
	m = next.(TileExplorerModel)
	require.NotNil(t, freshCmd)

	// the earlier tile's result arrives after the move
	next, _ = m.Update(staleCmd())
	m = next.(TileExplorerModel)
	assert.Nil(t, m.snapshot)
	assert.True(t, m.isLoading)

	next, _ = m.Update(freshCmd())
	m = next.(TileExplorerModel)
	require.NotNil(t, m.snapshot)
	assert.Equal(t, 1, m.snapshot.TileX)
	assert.False(t, m.isLoading)

	next, _ = m.Update(snapshotErrorMsg{tileX: 0, tileZ: 0, err: "late failure"})
	m = next.(TileExplorerModel)
	assert.Empty(t, m.errorMsg)
	assert.NotNil(t, m.snapshot)
}
