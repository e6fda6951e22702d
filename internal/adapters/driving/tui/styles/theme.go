// Package styles provides the colour palette and lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colours of the TUI. Each colour has a light and a dark
// variant; lipgloss picks one from the terminal background.
type Palette struct {
	// Accent marks titles, the editor frame and the selected sentence.
	Accent lipgloss.AdaptiveColor

	// Marker colours sentence bullets.
	Marker lipgloss.AdaptiveColor

	// Text is the body text colour.
	Text lipgloss.AdaptiveColor

	// Subtle is used for hints, scores and footers.
	Subtle lipgloss.AdaptiveColor

	// Surface is the status bar background.
	Surface lipgloss.AdaptiveColor

	Caution lipgloss.AdaptiveColor
	Alert   lipgloss.AdaptiveColor
}

// DefaultPalette returns the default palette.
func DefaultPalette() *Palette {
	return &Palette{
		Accent:  lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"},
		Marker:  lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FDBA74"},
		Text:    lipgloss.AdaptiveColor{Light: "#1C1917", Dark: "#E7E5E4"},
		Subtle:  lipgloss.AdaptiveColor{Light: "#78716C", Dark: "#A8A29E"},
		Surface: lipgloss.AdaptiveColor{Light: "#F5F5F4", Dark: "#292524"},
		Caution: lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FDE047"},
		Alert:   lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FCA5A5"},
	}
}

// Styles are the rendered styles shared by the views and components.
type Styles struct {
	palette *Palette

	Title     lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style // selected sentence
	Bullet    lipgloss.Style
	Score     lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Editor    lipgloss.Style // text area frame
	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds styles from p. A nil palette uses DefaultPalette.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}

	return &Styles{
		palette:   p,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Normal:    lipgloss.NewStyle().Foreground(p.Text),
		Muted:     lipgloss.NewStyle().Foreground(p.Subtle),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Bullet:    lipgloss.NewStyle().Bold(true).Foreground(p.Marker),
		Score:     lipgloss.NewStyle().Italic(true).Foreground(p.Subtle),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(p.Alert),
		Warning:   lipgloss.NewStyle().Foreground(p.Caution),
		Editor: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Background(p.Surface).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true).Foreground(p.Subtle),
	}
}

// DefaultStyles returns styles built from the default palette.
func DefaultStyles() *Styles {
	return NewStyles(DefaultPalette())
}

// Palette returns the palette the styles were built from.
func (s *Styles) Palette() *Palette {
	return s.palette
}
