// Package styles holds the lipgloss styles of the TUI, switchable
// between the dark and light themes.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is one theme's color set.
type Palette struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Emphasis lipgloss.Color
	Border   lipgloss.Color
}

var (
	darkPalette = Palette{
		Primary:  lipgloss.Color("#7B61FF"),
		Muted:    lipgloss.Color("#666666"),
		Success:  lipgloss.Color("#73F59F"),
		Error:    lipgloss.Color("#F56565"),
		Emphasis: lipgloss.Color("#FFFFFF"),
		Border:   lipgloss.Color("#7B61FF"),
	}
	lightPalette = Palette{
		Primary:  lipgloss.Color("#5436DA"),
		Muted:    lipgloss.Color("#999999"),
		Success:  lipgloss.Color("#1E9E55"),
		Error:    lipgloss.Color("#C53030"),
		Emphasis: lipgloss.Color("#000000"),
		Border:   lipgloss.Color("#5436DA"),
	}
)

// Set bundles the styles used throughout the views.
type Set struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Breadcrumb lipgloss.Style
	Crumb      lipgloss.Style
	CrumbHere  lipgloss.Style
	Tile       lipgloss.Style
	TileCursor lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Muted      lipgloss.Style
	Notice     lipgloss.Style
	NoticeErr  lipgloss.Style
	Help       lipgloss.Style
	Overlay    lipgloss.Style
}

// ForTheme builds the style set for a theme name. Unknown names fall
// back to dark.
func ForTheme(name string) Set {
	p := darkPalette
	if name == "light" {
		p = lightPalette
	}
	return Set{
		App:        lipgloss.NewStyle().Padding(1, 2),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Breadcrumb: lipgloss.NewStyle().Bold(true),
		Crumb:      lipgloss.NewStyle().Foreground(p.Primary).Underline(true),
		CrumbHere:  lipgloss.NewStyle().Foreground(p.Emphasis).Bold(true),
		Tile: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted),
		TileCursor: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Unselected: lipgloss.NewStyle().Foreground(p.Muted),
		Muted:      lipgloss.NewStyle().Foreground(p.Muted),
		Notice:     lipgloss.NewStyle().Foreground(p.Success),
		NoticeErr:  lipgloss.NewStyle().Foreground(p.Error),
		Help:       lipgloss.NewStyle().Foreground(p.Muted),
		Overlay: lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Border),
	}
}
