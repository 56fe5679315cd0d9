package interp

import "fmt"

// noiseCache holds 3D generator output at every coarse column around the
// tile and every vertical sample 0..64 (y = 0, 4, ..., 256).
type noiseCache [coarseSpan][coarseSpan][layers + 1]float64

// Tile3 is a trilinear tile interpolator: 4x4 columns of 64 stacked Cell3
// boxes covering one 16x256x16 tile.
type Tile3 struct {
	cells [cellsPerSide][layers][cellsPerSide]Cell3
}

// NewTile3 samples the classifier and generators around tile (tileX, tileZ)
// and builds its trilinear lattice. The world is forwarded to generator
// calls; none of the collaborators are retained.
func NewTile3(w World, tileX, tileZ int, c Classifier, src NoiseSource) (*Tile3, error) {
	originX, originZ := tileOrigin(tileX, tileZ)
	grid, err := resolveGrid(c, originX, originZ, PhaseBase)
	if err != nil {
		return nil, fmt.Errorf("build trilinear tile (%d, %d): %w", tileX, tileZ, err)
	}

	cache := storeNoise(grid, w, src, originX, originZ)

	t := &Tile3{}
	for x := 0; x < cellsPerSide; x++ {
		for z := 0; z < cellsPerSide; z++ {
			for y := 0; y < layers; y++ {
				t.cells[x][y][z] = NewCell3(
					cache.blend(x, y, z),
					cache.blend(x+1, y, z),
					cache.blend(x, y+1, z),
					cache.blend(x+1, y+1, z),
					cache.blend(x, y, z+1),
					cache.blend(x+1, y, z+1),
					cache.blend(x, y+1, z+1),
					cache.blend(x+1, y+1, z+1),
				)
			}
		}
	}
	return t, nil
}

// storeNoise evaluates every coarse column's generator at its own world
// position for each vertical sample.
func storeNoise(grid *generatorGrid, w World, src NoiseSource, originX, originZ int) *noiseCache {
	cache := new(noiseCache)
	for sx := 0; sx < coarseSpan; sx++ {
		wx := originX + (sx-margin)*Step
		for sz := 0; sz < coarseSpan; sz++ {
			wz := originZ + (sz-margin)*Step
			gen := grid[sx][sz]
			for y := 0; y <= layers; y++ {
				cache[sx][sz][y] = gen.Noise3D(src, w, wx, y*Step, wz)
			}
		}
	}
	return cache
}

// blend averages the cached cross neighbours of lattice corner (cx, cy, cz).
func (c *noiseCache) blend(cx, cy, cz int) float64 {
	sx, sz := cx+margin, cz+margin
	return (c[sx+1][sz][cy] +
		c[sx-1][sz][cy] +
		c[sx][sz+1][cy] +
		c[sx][sz-1][cy]) / 4
}

// Value3 returns the interpolated density at tile-local (x, y, z) with x, z
// in [0,16) and y in [0,256).
func (t *Tile3) Value3(x, y, z float64) float64 {
	cx, tx := locate(x)
	cy, ty := locate(y)
	cz, tz := locate(z)
	return t.cells[cx][cy][cz].Value(tx, ty, tz)
}

// Value samples the bottom of the tile (y = 0).
func (t *Tile3) Value(x, z float64) float64 {
	return t.Value3(x, 0, z)
}
