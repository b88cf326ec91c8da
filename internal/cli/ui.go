package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvngraph/mvngraph/pkg/config"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - keys
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleKey for configuration keys, padded to a fixed column.
	styleKey = lipgloss.NewStyle().Foreground(colorGray).Width(12)

	// styleValue for configuration values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleHighlight for emphasized values.
	styleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// styleDim for secondary/muted text such as the unset sentinel.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Configuration Output
// =============================================================================

// printConfig writes the resolved configuration as one key/value line per
// option, in the fixed field order defined by Config.Fields.
func printConfig(w io.Writer, cfg *config.Config) {
	for _, f := range cfg.Fields() {
		printField(w, f)
	}
}

// printField writes a single configuration line. Unset optionals render the
// sentinel in muted style.
func printField(w io.Writer, f config.Field) {
	if !f.Set {
		fmt.Fprintln(w, styleKey.Render(f.Key)+" "+styleDim.Render(config.Unset))
		return
	}
	if f.Key == "package" {
		fmt.Fprintln(w, styleKey.Render(f.Key)+" "+styleHighlight.Render(f.Value))
		return
	}
	fmt.Fprintln(w, styleKey.Render(f.Key)+" "+styleValue.Render(f.Value))
}
