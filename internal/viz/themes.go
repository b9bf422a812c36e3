package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI panels.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	North     lipgloss.Color
	South     lipgloss.Color
}

var (
	ThemeWorkshop = Theme{
		Name:      "workshop",
		Primary:   lipgloss.Color("86"),
		Secondary: lipgloss.Color("213"),
		Accent:    lipgloss.Color("220"),
		Text:      lipgloss.Color("252"),
		Muted:     lipgloss.Color("240"),
		North:     lipgloss.Color("196"),
		South:     lipgloss.Color("33"),
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#88ff88"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		North:     lipgloss.Color("#ff5555"),
		South:     lipgloss.Color("#5555ff"),
	}

	ThemePaper = Theme{
		Name:      "paper",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		North:     lipgloss.Color("#ff4444"),
		South:     lipgloss.Color("#4488ff"),
	}

	CurrentTheme = ThemeWorkshop

	Themes = []Theme{ThemeWorkshop, ThemePhosphor, ThemePaper}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeWorkshop
}

// SetTheme changes the current theme.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// CycleTheme switches to the next theme in order.
func CycleTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}
