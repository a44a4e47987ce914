package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the live view. Energy colors match the chart export:
// potential red, kinetic blue, total green.
type Theme struct {
	Name      string
	Atom      lipgloss.Color
	Bond      lipgloss.Color
	Title     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Potential lipgloss.Color
	Kinetic   lipgloss.Color
	Total     lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:      "classic",
		Atom:      lipgloss.Color("#00ccff"),
		Bond:      lipgloss.Color("#888899"),
		Title:     lipgloss.Color("86"),
		Text:      lipgloss.Color("252"),
		Muted:     lipgloss.Color("240"),
		Potential: lipgloss.Color("#ff4444"),
		Kinetic:   lipgloss.Color("#4488ff"),
		Total:     lipgloss.Color("#00ff88"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Atom:      lipgloss.Color("#00ff00"),
		Bond:      lipgloss.Color("#00cc00"),
		Title:     lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Potential: lipgloss.Color("#ffff00"),
		Kinetic:   lipgloss.Color("#88ff88"),
		Total:     lipgloss.Color("#00ff00"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Atom:      lipgloss.Color("#ffffff"),
		Bond:      lipgloss.Color("#aaaaaa"),
		Title:     lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#cccccc"),
		Muted:     lipgloss.Color("#666666"),
		Potential: lipgloss.Color("#ffffff"),
		Kinetic:   lipgloss.Color("#aaaaaa"),
		Total:     lipgloss.Color("#888888"),
	}
)

var themes = []Theme{ThemeClassic, ThemeRetro, ThemeMono}

var CurrentTheme = ThemeClassic

func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// SetTheme switches CurrentTheme and reports whether name exists.
func SetTheme(name string) bool {
	for _, t := range themes {
		if t.Name == name {
			CurrentTheme = t
			return true
		}
	}
	return false
}

// NextTheme cycles CurrentTheme.
func NextTheme() {
	for i, t := range themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = themes[(i+1)%len(themes)]
			return
		}
	}
	CurrentTheme = themes[0]
}
