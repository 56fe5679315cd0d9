package interp

import "fmt"

// Tile2 is a bilinear tile interpolator: a 4x4 lattice of Cell2 covering one
// 16x16 tile with no vertical variation.
type Tile2 struct {
	cells [cellsPerSide][cellsPerSide]Cell2
}

// NewTile2 samples the classifier around tile (tileX, tileZ) and builds its
// bilinear lattice. The classifier and noise source are not retained.
func NewTile2(tileX, tileZ int, c Classifier, src NoiseSource) (*Tile2, error) {
	originX, originZ := tileOrigin(tileX, tileZ)
	grid, err := resolveGrid(c, originX, originZ, PhaseBase)
	if err != nil {
		return nil, fmt.Errorf("build bilinear tile (%d, %d): %w", tileX, tileZ, err)
	}

	t := &Tile2{}
	b := blender2{grid: grid, src: src, originX: originX, originZ: originZ}
	for x := 0; x < cellsPerSide; x++ {
		for z := 0; z < cellsPerSide; z++ {
			t.cells[x][z] = NewCell2(
				b.corner(x, z),
				b.corner(x+1, z),
				b.corner(x, z+1),
				b.corner(x+1, z+1),
			)
		}
	}
	return t, nil
}

// Value returns the interpolated density at tile-local (x, z), both in [0,16).
func (t *Tile2) Value(x, z float64) float64 {
	cx, tx := locate(x)
	cz, tz := locate(z)
	return t.cells[cx][cz].Value(tx, tz)
}

// Value3 ignores y: the bilinear field has no vertical variation.
func (t *Tile2) Value3(x, _, z float64) float64 {
	return t.Value(x, z)
}

// blender2 computes bilinear corner values. Unlike the trilinear variant it
// evaluates the neighbouring generators again for every corner, at the
// corner's own world position, rather than reading cached samples.
type blender2 struct {
	grid             *generatorGrid
	src              NoiseSource
	originX, originZ int
}

// corner blends the four cross neighbours (coarse index ±1 on each axis)
// of lattice corner (cx, cz), cx and cz in 0..4.
func (b blender2) corner(cx, cz int) float64 {
	wx := b.originX + cx*Step
	wz := b.originZ + cz*Step
	sx, sz := cx+margin, cz+margin
	sum := b.grid[sx+1][sz].Noise2D(b.src, wx, wz) +
		b.grid[sx-1][sz].Noise2D(b.src, wx, wz) +
		b.grid[sx][sz+1].Noise2D(b.src, wx, wz) +
		b.grid[sx][sz-1].Noise2D(b.src, wx, wz)
	return sum / 4 * bilinearScale
}
