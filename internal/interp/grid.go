package interp

import (
	"fmt"
	"math"
)

const (
	// TileSize is the horizontal extent of a tile on both axes.
	TileSize = 16
	// TileHeight is the vertical extent of a tile in the trilinear variant.
	TileHeight = 256
	// Step is the decimation factor: generators are sampled every Step units.
	Step = 4

	cellsPerSide = TileSize / Step   // 4
	layers       = TileHeight / Step // 64

	// margin is the number of coarse samples kept outside the tile on each
	// horizontal side. Corner blends read coarse index ±1 around corners
	// 0..cellsPerSide, so index -1..cellsPerSide+1 must exist; the grid
	// covers -margin..cellsPerSide+margin-1.
	margin     = 2
	coarseSpan = cellsPerSide + 2*margin // 8

	// bilinearScale is applied to every blended bilinear corner so its
	// magnitude matches the trilinear variant's output.
	bilinearScale = 2.0
)

// generatorGrid holds the biome generators resolved at every coarse
// sample around a tile, indexed by coarse index + margin.
type generatorGrid [coarseSpan][coarseSpan]Generator

// tileOrigin converts tile coordinates to the world coordinate of the
// tile's (0,0) column.
func tileOrigin(tileX, tileZ int) (int, int) {
	return tileX * TileSize, tileZ * TileSize
}

// resolveGrid resolves the generator at each coarse index -2..5 on
// both axes. A classifier failure aborts the whole grid.
func resolveGrid(c Classifier, originX, originZ int, phase Phase) (*generatorGrid, error) {
	var g generatorGrid
	for sx := 0; sx < coarseSpan; sx++ {
		for sz := 0; sz < coarseSpan; sz++ {
			wx := originX + (sx-margin)*Step
			wz := originZ + (sz-margin)*Step
			gen, err := c.Resolve(wx, wz, phase)
			if err != nil {
				return nil, fmt.Errorf("resolve biome at (%d, %d): %w", wx, wz, err)
			}
			g[sx][sz] = gen
		}
	}
	return &g, nil
}

// locate splits a tile-local coordinate into its lattice cell index and the
// fractional position inside that cell. Coordinates outside the tile yield
// an index outside the lattice arrays, so the caller's array access panics.
func locate(v float64) (int, float64) {
	cell := int(math.Floor(v)) >> 2
	return cell, (v - float64(cell*Step)) / Step
}
