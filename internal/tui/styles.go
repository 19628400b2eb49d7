package tui

import "github.com/charmbracelet/lipgloss"

// Colors used in the console.
var (
	ColorPrimary = lipgloss.Color("#34D399") // Green
	ColorAccent  = lipgloss.Color("#60A5FA") // Blue
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the console.
type Styles struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Badge      lipgloss.Style
	DryRun     lipgloss.Style
	Selected   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Result     lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Busy       lipgloss.Style
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	Dialog     lipgloss.Style
	DialogText lipgloss.Style
	Input      lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Badge: lipgloss.NewStyle().
			Foreground(ColorAccent),
		DryRun: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Normal: lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Result: lipgloss.NewStyle().
			MarginTop(1),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Busy: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true),
		Footer: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		FooterKey: lipgloss.NewStyle().
			Foreground(ColorAccent),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),
		DialogText: lipgloss.NewStyle(),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1),
	}
}
