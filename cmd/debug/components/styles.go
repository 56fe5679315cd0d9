package components

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Color definitions
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4")
	SecondaryColor = lipgloss.Color("#04B575")
	AccentColor    = lipgloss.Color("#FFD700")
	DangerColor    = lipgloss.Color("#F25D94")

	// Grayscale
	LightGray = lipgloss.Color("#D9D9D9")
	Gray      = lipgloss.Color("#8B8B8B")
	DarkGray  = lipgloss.Color("#383838")
)

// DensityRamp runs from empty air to dense rock.
var DensityRamp = []lipgloss.Color{
	"#0B1D51", // deep air
	"#1E3F8A",
	"#3A7BD5",
	"#7FB3E6",
	"#C9D6A3", // surface
	"#A7C957",
	"#6A994E",
	"#7F5539",
	"#5C4033",
	"#3B2F2F", // bedrock
}

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 2)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(1)

	InfoPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(1).
			MarginLeft(2)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(DarkGray).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(DangerColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true)

	GridCellStyle = lipgloss.NewStyle().
			Width(2).
			Align(lipgloss.Center)

	GridSelectedCellStyle = lipgloss.NewStyle().
				Width(2).
				Align(lipgloss.Center).
				Background(AccentColor).
				Foreground(lipgloss.Color("#000000")).
				Bold(true)
)

// Grid symbols
const (
	SolidSymbol  = "██"
	AirSymbol    = "··"
	CursorSymbol = "><"
)

// RampIndex maps v in [lo, hi] onto an index of DensityRamp. A degenerate
// range maps everything to the middle.
func RampIndex(v, lo, hi float64) int {
	last := len(DensityRamp) - 1
	if hi <= lo || math.IsNaN(v) {
		return last / 2
	}
	t := (v - lo) / (hi - lo)
	i := int(math.Round(t * float64(last)))
	switch {
	case i < 0:
		return 0
	case i > last:
		return last
	default:
		return i
	}
}

// DensityColor returns the ramp color for v within [lo, hi].
func DensityColor(v, lo, hi float64) lipgloss.Color {
	return DensityRamp[RampIndex(v, lo, hi)]
}

// DensitySymbol marks positive density as solid.
func DensitySymbol(v float64) string {
	if v > 0 {
		return SolidSymbol
	}
	return AirSymbol
}
