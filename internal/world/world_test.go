package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		seed     int64
		wantName string
	}{
		{name: "named", input: "nether", seed: 42, wantName: "nether"},
		{name: "trimmed", input: "  end ", seed: -1, wantName: "end"},
		{name: "blank falls back", input: "   ", seed: 0, wantName: DefaultName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(tt.input, tt.seed)
			assert.Equal(t, tt.wantName, w.Name())
			assert.Equal(t, tt.seed, w.Seed())
		})
	}

	assert.Equal(t, "overworld(seed=7)", New("", 7).String())
}
