package models

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/density/cmd/debug/components"
	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/sampler"
)

// TileSampler produces snapshots for the explorer.
type TileSampler interface {
	Mode() interp.Mode
	Sample(ctx context.Context, tileX, tileZ int) (*sampler.Snapshot, error)
}

// LayerStats summarises one horizontal slice of a snapshot.
type LayerStats struct {
	Min, Max, Mean float64
	// Solid is the fraction of cells with positive density.
	Solid float64
}

// TileExplorerModel renders a horizontal density slice of one tile.
type TileExplorerModel struct {
	sampler TileSampler

	// Current state
	tileX   int
	tileZ   int
	layer   int
	cursorX int
	cursorZ int
	width   int
	height  int

	// Data
	snapshot    *sampler.Snapshot
	isLoading   bool
	lastUpdated time.Time
	lastElapsed time.Duration
	errorMsg    string

	// UI state
	showInfo bool
}

// Both load messages carry the tile they were requested for so results of
// an earlier tile arriving late are dropped.
type snapshotLoadedMsg struct {
	tileX, tileZ int
	snapshot     *sampler.Snapshot
	elapsed      time.Duration
}

type snapshotErrorMsg struct {
	tileX, tileZ int
	err          string
}

// NewTileExplorerModel creates an explorer positioned at the given tile.
func NewTileExplorerModel(s TileSampler, tileX, tileZ int) TileExplorerModel {
	layer := 0
	if s.Mode() == interp.Trilinear {
		layer = interp.TileHeight / 4
	}
	return TileExplorerModel{
		sampler:  s,
		tileX:    tileX,
		tileZ:    tileZ,
		layer:    layer,
		cursorX:  interp.TileSize / 2,
		cursorZ:  interp.TileSize / 2,
		showInfo: true,
	}
}

// Init loads the starting tile
func (m TileExplorerModel) Init() tea.Cmd {
	return m.loadSnapshotCmd()
}

// Update handles key presses and loaded snapshots
func (m TileExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		// Cursor movement within tile
		case "up", "k":
			m.moveCursor(0, -1)
		case "down", "j":
			m.moveCursor(0, 1)
		case "left", "h":
			m.moveCursor(-1, 0)
		case "right", "l":
			m.moveCursor(1, 0)

		// Tile navigation
		case "shift+up", "K":
			return m.moveTile(0, -1)
		case "shift+down", "J":
			return m.moveTile(0, 1)
		case "shift+left", "H":
			return m.moveTile(-1, 0)
		case "shift+right", "L":
			return m.moveTile(1, 0)

		// Vertical slice
		case "+", "=":
			m.shiftLayer(1)
		case "-":
			m.shiftLayer(-1)
		case "pgup", "]":
			m.shiftLayer(interp.Step * 4)
		case "pgdown", "[":
			m.shiftLayer(-interp.Step * 4)

		case "r":
			m.isLoading = true
			return m, m.loadSnapshotCmd()
		case "i":
			m.showInfo = !m.showInfo
		}

	case snapshotLoadedMsg:
		if !m.isCurrentTile(msg.tileX, msg.tileZ) {
			break
		}
		m.snapshot = msg.snapshot
		m.isLoading = false
		m.errorMsg = ""
		m.lastUpdated = time.Now()
		m.lastElapsed = msg.elapsed

	case snapshotErrorMsg:
		if !m.isCurrentTile(msg.tileX, msg.tileZ) {
			break
		}
		m.isLoading = false
		m.errorMsg = msg.err
	}

	return m, nil
}

func (m TileExplorerModel) isCurrentTile(tileX, tileZ int) bool {
	return tileX == m.tileX && tileZ == m.tileZ
}

func (m *TileExplorerModel) moveCursor(dx, dz int) {
	m.cursorX = clamp(m.cursorX+dx, 0, interp.TileSize-1)
	m.cursorZ = clamp(m.cursorZ+dz, 0, interp.TileSize-1)
}

func (m TileExplorerModel) moveTile(dx, dz int) (tea.Model, tea.Cmd) {
	m.tileX += dx
	m.tileZ += dz
	m.snapshot = nil
	m.isLoading = true
	return m, m.loadSnapshotCmd()
}

func (m *TileExplorerModel) shiftLayer(dy int) {
	if m.sampler.Mode() != interp.Trilinear {
		return
	}
	m.layer = clamp(m.layer+dy, 0, interp.TileHeight-1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Stats summarises the current layer. ok is false until a snapshot loaded.
func (m TileExplorerModel) Stats() (stats LayerStats, ok bool) {
	if m.snapshot == nil {
		return LayerStats{}, false
	}

	stats.Min, stats.Max = math.Inf(1), math.Inf(-1)
	solid, sum := 0, 0.0
	for z := 0; z < interp.TileSize; z++ {
		for x := 0; x < interp.TileSize; x++ {
			v := m.valueAt(x, z)
			stats.Min = math.Min(stats.Min, v)
			stats.Max = math.Max(stats.Max, v)
			sum += v
			if v > 0 {
				solid++
			}
		}
	}

	n := float64(interp.TileSize * interp.TileSize)
	stats.Mean = sum / n
	stats.Solid = float64(solid) / n
	return stats, true
}

func (m TileExplorerModel) valueAt(x, z int) float64 {
	y := 0
	if m.snapshot.Height > 1 {
		y = m.layer
	}
	v, err := m.snapshot.At(x, y, z)
	if err != nil {
		return math.NaN()
	}
	return v
}

// View renders the tile explorer
func (m TileExplorerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	title := fmt.Sprintf("Tile Explorer - (%d, %d) %s", m.tileX, m.tileZ, m.sampler.Mode())
	if m.sampler.Mode() == interp.Trilinear {
		title += fmt.Sprintf(" y=%d", m.layer)
	}
	s.WriteString(components.TitleStyle.Render(title) + "\n")

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderGrid(),
		m.renderInfoPanel(),
	)
	s.WriteString(mainContent + "\n")
	s.WriteString(m.renderStatusBar())

	return s.String()
}

func (m TileExplorerModel) renderGrid() string {
	if m.snapshot == nil {
		if m.errorMsg != "" {
			return components.BorderStyle.Render(components.ErrorStyle.Render("Error: " + m.errorMsg))
		}
		return components.BorderStyle.Render("Sampling tile...")
	}

	stats, _ := m.Stats()

	var gridRows []string
	for z := 0; z < interp.TileSize; z++ {
		var row []string
		for x := 0; x < interp.TileSize; x++ {
			v := m.valueAt(x, z)
			cellStyle := components.GridCellStyle.Foreground(components.DensityColor(v, stats.Min, stats.Max))
			content := components.DensitySymbol(v)
			if m.snapshot.Height == 1 {
				content = components.SolidSymbol
			}
			if x == m.cursorX && z == m.cursorZ {
				cellStyle = components.GridSelectedCellStyle
				content = components.CursorSymbol
			}
			row = append(row, cellStyle.Render(content))
		}
		gridRows = append(gridRows, strings.Join(row, ""))
	}

	return components.BorderStyle.
		Width(interp.TileSize*2 + 2).
		Height(interp.TileSize + 2).
		Render(strings.Join(gridRows, "\n"))
}

func (m TileExplorerModel) renderInfoPanel() string {
	if !m.showInfo {
		return ""
	}

	var info strings.Builder

	info.WriteString(components.SubtitleStyle.Render("Position Info") + "\n")
	info.WriteString(fmt.Sprintf("Tile: (%d, %d)\n", m.tileX, m.tileZ))
	info.WriteString(fmt.Sprintf("Local: (%d, %d)\n", m.cursorX, m.cursorZ))
	info.WriteString(fmt.Sprintf("World: (%d, %d)\n\n",
		m.tileX*interp.TileSize+m.cursorX,
		m.tileZ*interp.TileSize+m.cursorZ))

	if stats, ok := m.Stats(); ok {
		info.WriteString(components.SubtitleStyle.Render("Density") + "\n")
		info.WriteString(fmt.Sprintf("Cursor: %.4f\n", m.valueAt(m.cursorX, m.cursorZ)))
		info.WriteString(fmt.Sprintf("Min: %.4f  Max: %.4f\n", stats.Min, stats.Max))
		info.WriteString(fmt.Sprintf("Mean: %.4f\n", stats.Mean))
		if m.snapshot.Height > 1 {
			info.WriteString(fmt.Sprintf("Solid: %.0f%%\n", stats.Solid*100))
		}
	}

	info.WriteString("\n" + components.SubtitleStyle.Render("Controls") + "\n")
	info.WriteString("Arrow keys: Move cursor\n")
	info.WriteString("Shift+Arrow: Move tile\n")
	if m.sampler.Mode() == interp.Trilinear {
		info.WriteString("+/-: Layer  [/]: 16 layers\n")
	}
	info.WriteString("r: Resample  i: Toggle info\n")
	info.WriteString("q: Quit\n")

	return components.InfoPanelStyle.Render(info.String())
}

func (m TileExplorerModel) renderStatusBar() string {
	var status []string

	if m.isLoading {
		status = append(status, "Sampling...")
	}
	if m.snapshot != nil {
		status = append(status, fmt.Sprintf("Snapshot: %s", m.snapshot.ID.String()[:8]))
		status = append(status, fmt.Sprintf("Sampled in %s", m.lastElapsed.Round(time.Millisecond)))
	}
	if !m.lastUpdated.IsZero() {
		status = append(status, fmt.Sprintf("Updated: %s", m.lastUpdated.Format("15:04:05")))
	}
	if m.errorMsg != "" {
		status = append(status, fmt.Sprintf("Error: %s", m.errorMsg))
	}

	return components.StatusBarStyle.Width(m.width).Render(strings.Join(status, " • "))
}

// SetSize updates the explorer size
func (m *TileExplorerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m TileExplorerModel) loadSnapshotCmd() tea.Cmd {
	tileX, tileZ := m.tileX, m.tileZ
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		start := time.Now()
		snap, err := m.sampler.Sample(ctx, tileX, tileZ)
		if err != nil {
			return snapshotErrorMsg{tileX: tileX, tileZ: tileZ, err: err.Error()}
		}
		return snapshotLoadedMsg{tileX: tileX, tileZ: tileZ, snapshot: snap, elapsed: time.Since(start)}
	}
}
