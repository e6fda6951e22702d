package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette_HasBothVariants(t *testing.T) {
	p := DefaultPalette()

	require.NotNil(t, p)
	for name, c := range map[string]lipgloss.AdaptiveColor{
		"Accent":  p.Accent,
		"Marker":  p.Marker,
		"Text":    p.Text,
		"Subtle":  p.Subtle,
		"Surface": p.Surface,
		"Caution": p.Caution,
		"Alert":   p.Alert,
	} {
		assert.NotEmpty(t, c.Light, name)
		assert.NotEmpty(t, c.Dark, name)
	}
}

func TestDefaultPalette_SignalColoursAreDistinct(t *testing.T) {
	p := DefaultPalette()

	seen := make(map[string]bool)
	for _, c := range []lipgloss.AdaptiveColor{p.Accent, p.Marker, p.Caution, p.Alert} {
		assert.False(t, seen[c.Dark], "duplicate colour: %s", c.Dark)
		seen[c.Dark] = true
	}
}

func TestNewStyles(t *testing.T) {
	p := DefaultPalette()
	s := NewStyles(p)

	require.NotNil(t, s)
	assert.Same(t, p, s.Palette())
}

func TestNewStyles_NilPalette(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.NotNil(t, s.Palette())
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Title":     s.Title,
		"Normal":    s.Normal,
		"Muted":     s.Muted,
		"Highlight": s.Highlight,
		"Bullet":    s.Bullet,
		"Score":     s.Score,
		"Error":     s.Error,
		"Warning":   s.Warning,
		"Editor":    s.Editor,
		"StatusBar": s.StatusBar,
		"Help":      s.Help,
	} {
		assert.Contains(t, style.Render("sample"), "sample", name)
	}
}

func TestStyles_EditorHasFrame(t *testing.T) {
	w, h := DefaultStyles().Editor.GetFrameSize()

	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
}
