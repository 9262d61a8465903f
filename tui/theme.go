// ABOUTME: Light and dark themes for the console
// ABOUTME: Maps theme palettes to the lipgloss styles used by every view
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

// Theme defines the color palette for one appearance mode.
type Theme struct {
	Name string

	Accent  string
	Text    string
	Muted   string
	Success string
	Danger  string
	Warning string

	SelectionBg   string
	SelectionText string
	TabBg         string

	StatusColors map[models.LeadStatus]string
}

// LightTheme mirrors the console's light appearance.
func LightTheme() Theme {
	return Theme{
		Name:          "light",
		Accent:        "27",
		Text:          "235",
		Muted:         "245",
		Success:       "28",
		Danger:        "124",
		Warning:       "130",
		SelectionBg:   "153",
		SelectionText: "17",
		TabBg:         "254",
		StatusColors: map[models.LeadStatus]string{
			models.StatusNew:         "27",
			models.StatusContacted:   "130",
			models.StatusQualified:   "28",
			models.StatusUnqualified: "245",
		},
	}
}

// DarkTheme mirrors the console's dark appearance.
func DarkTheme() Theme {
	return Theme{
		Name:          "dark",
		Accent:        "170",
		Text:          "252",
		Muted:         "240",
		Success:       "42",
		Danger:        "203",
		Warning:       "214",
		SelectionBg:   "57",
		SelectionText: "230",
		TabBg:         "235",
		StatusColors: map[models.LeadStatus]string{
			models.StatusNew:         "39",
			models.StatusContacted:   "214",
			models.StatusQualified:   "42",
			models.StatusUnqualified: "240",
		},
	}
}

// ThemeByName resolves a persisted theme preference.
func ThemeByName(name string) Theme {
	if name == "dark" {
		return DarkTheme()
	}
	return LightTheme()
}

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Selected    lipgloss.Style
	Label       lipgloss.Style
}

// Styles builds the style set for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)).
			MarginBottom(1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)).
			Background(lipgloss.Color(t.TabBg)).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 2),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Danger)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectionText)).
			Background(lipgloss.Color(t.SelectionBg)),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Text)),
	}
}

// StatusStyle returns the style for one lead status chip.
func (t Theme) StatusStyle(status models.LeadStatus) lipgloss.Style {
	color, ok := t.StatusColors[status]
	if !ok {
		color = t.Muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
