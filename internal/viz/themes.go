package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a color scheme for the live view.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemePhosphor = Theme{
		Name:      "phosphor",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Muted:     lipgloss.Color("#005500"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	ThemeNebula = Theme{
		Name:      "nebula",
		Primary:   lipgloss.Color("#c792ea"),
		Secondary: lipgloss.Color("#82aaff"),
		Accent:    lipgloss.Color("#ffcb6b"),
		Muted:     lipgloss.Color("#4a4a6a"),
		Warning:   lipgloss.Color("#ff5370"),
	}

	ThemeEmber = Theme{
		Name:      "ember",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Warning:   lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{ThemePhosphor, ThemeNebula, ThemeEmber}
)

// GetTheme returns the named theme, defaulting to phosphor.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePhosphor
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
