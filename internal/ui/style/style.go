// Package style provides the shared colors, icons and status styles of the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Freshness returns the icon and color used to display a freshness state.
// Unknown states are rendered like missing artifacts.
func Freshness(state string) (string, lipgloss.Color) {
	switch state {
	case "fresh":
		return Check, Green
	case "stale":
		return Tilde, Yellow
	default:
		return Circle, Slate
	}
}
