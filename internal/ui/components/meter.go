package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hollisv/caresim/internal/ui/theme"
)

// MeterBar displays one of the two simulation meters as a horizontal bar.
// The fill color shifts with the value so a deteriorating situation is
// visible at a glance.
type MeterBar struct {
	Label string
	Value int // 0-100
	Width int
}

// NewMeterBar creates a meter bar.
func NewMeterBar(label string, value, width int) MeterBar {
	return MeterBar{Label: label, Value: value, Width: width}
}

// View renders the meter bar.
func (m MeterBar) View() string {
	var result string

	if m.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(m.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	valueWidth := 5 // " 100"

	barWidth := m.Width - labelWidth - valueWidth
	if barWidth < 4 {
		barWidth = 4
	}

	value := m.Value
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	filled := barWidth * value / 100
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(m.fillColor()).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %3d", value))

	return result
}

func (m MeterBar) fillColor() color.Color {
	switch {
	case m.Value < 30:
		return theme.Error
	case m.Value < 50:
		return theme.Warning
	default:
		return theme.Success
	}
}
