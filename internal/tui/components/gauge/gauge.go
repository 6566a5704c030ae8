// Package gauge provides a TUI component that draws a bounded value as a bar.
package gauge

import (
	"strings"

	"github.com/alkime/frostslider/internal/tui/style"
	"github.com/alkime/frostslider/pkg/uictl"
)

// Block characters for partial fill (8 levels, left to right).
// Index 0 = empty (space), 8 = full cell.
const blockChars = " ▏▎▍▌▋▊▉█"

// Model draws where a RangedDial sits between its bounds.
// Each cell holds eight levels, so the bar resolves width*8 positions.
type Model struct {
	dial  uictl.RangedDial[float64]
	width int
}

// New creates a gauge over dial, width cells wide.
func New(dial uictl.RangedDial[float64], width int) Model {
	if width < 1 {
		width = 1
	}

	return Model{
		dial:  dial,
		width: width,
	}
}

// View renders the bar.
func (m Model) View() string {
	if m.dial == nil {
		return m.renderEmpty()
	}

	lo, hi := m.dial.Bounds()

	return m.renderBar(fillLevel(m.dial.Read(), lo, hi, m.width*8))
}

// fillLevel maps v in [lo, hi] to 0..maxLevel. An empty range is full.
func fillLevel(v, lo, hi float64, maxLevel int) int {
	if hi <= lo {
		return maxLevel
	}

	frac := (v - lo) / (hi - lo)
	level := int(frac*float64(maxLevel) + 0.5)

	return min(max(level, 0), maxLevel)
}

// renderBar draws level eighths of fill across the width.
func (m Model) renderBar(level int) string {
	runes := []rune(blockChars)

	var sb strings.Builder

	for col := 0; col < m.width; col++ {
		fill := level - col*8

		switch {
		case fill <= 0:
			sb.WriteRune(runes[0])
		case fill >= 8:
			sb.WriteRune(runes[8])
		default:
			sb.WriteRune(runes[fill])
		}
	}

	return style.Progress.Render(sb.String())
}

// renderEmpty draws a baseline when there is nothing to show.
func (m Model) renderEmpty() string {
	return style.Muted.Render(strings.Repeat("▁", m.width))
}
