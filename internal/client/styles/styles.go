// Package styles holds the lipgloss palette of the dark and light themes,
// shared by the REPL output and the TUI.
package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
)

// Palette uses 256-color indices.
type Palette struct {
	TitleBg     int
	TitleFg     int
	StatusBg    int
	StatusFg    int
	BorderColor int
	SelectedFg  int
	MutedFg     int
	ErrorFg     int
}

var (
	Dark = Palette{
		TitleBg:     62,
		TitleFg:     230,
		StatusBg:    236,
		StatusFg:    252,
		BorderColor: 240,
		SelectedFg:  212,
		MutedFg:     245,
		ErrorFg:     203,
	}
	Light = Palette{
		TitleBg:     25,
		TitleFg:     255,
		StatusBg:    254,
		StatusFg:    236,
		BorderColor: 250,
		SelectedFg:  161,
		MutedFg:     242,
		ErrorFg:     160,
	}
)

type Styles struct {
	Title    lipgloss.Style
	Status   lipgloss.Style
	Border   lipgloss.Style
	Focused  lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Bold     lipgloss.Style
}

func color(i int) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(i))
}

func (p Palette) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Background(color(p.TitleBg)).
			Foreground(color(p.TitleFg)).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Background(color(p.StatusBg)).
			Foreground(color(p.StatusFg)),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(color(p.BorderColor)),
		Focused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(color(p.SelectedFg)),
		Selected: lipgloss.NewStyle().
			Foreground(color(p.SelectedFg)).
			Bold(true),
		Muted: lipgloss.NewStyle().Foreground(color(p.MutedFg)),
		Error: lipgloss.NewStyle().Foreground(color(p.ErrorFg)),
		Bold:  lipgloss.NewStyle().Bold(true),
	}
}

// For returns the styles of theme t; unknown themes get the dark palette.
func For(t models.Theme) Styles {
	if t == models.ThemeLight {
		return Light.Styles()
	}
	return Dark.Styles()
}
