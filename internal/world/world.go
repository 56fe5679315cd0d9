// Package world holds the generation context shared by every tile of a
// density field.
package world

import (
	"fmt"
	"strings"

	"github.com/VoidMesh/density/internal/interp"
)

// DefaultName is used when no world name is configured.
const DefaultName = "overworld"

// World identifies a seeded generation context.
type World struct {
	name string
	seed int64
}

var _ interp.World = (*World)(nil)

// New creates a world. A blank name falls back to DefaultName.
func New(name string, seed int64) *World {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return &World{name: name, seed: seed}
}

func (w *World) Name() string { return w.name }

func (w *World) Seed() int64 { return w.seed }

func (w *World) String() string {
	return fmt.Sprintf("%s(seed=%d)", w.name, w.seed)
}
