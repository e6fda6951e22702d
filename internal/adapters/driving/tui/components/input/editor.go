// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/styles"
)

const (
	minWidth  = 20
	minHeight = 3
)

// Editor wraps a bubbles textarea for entering the text to summarise.
type Editor struct {
	textarea textarea.Model
	styles   *styles.Styles
	width    int
	height   int
}

// NewEditor creates a new editor component.
func NewEditor(s *styles.Styles) *Editor {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = "Paste or type the text to summarise..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	e := &Editor{
		textarea: ta,
		styles:   s,
	}
	e.SetDimensions(80, 14)
	return e
}

// Init initialises the editor.
func (e *Editor) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input messages.
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e *Editor) View() string {
	return e.styles.Editor.Render(e.textarea.View())
}

// Value returns the current text.
func (e *Editor) Value() string {
	return e.textarea.Value()
}

// SetValue replaces the current text.
func (e *Editor) SetValue(value string) {
	e.textarea.SetValue(value)
}

// Focus sets focus on the editor.
func (e *Editor) Focus() tea.Cmd {
	return e.textarea.Focus()
}

// Blur removes focus from the editor.
func (e *Editor) Blur() {
	e.textarea.Blur()
}

// Focused returns whether the editor is focused.
func (e *Editor) Focused() bool {
	return e.textarea.Focused()
}

// SetDimensions sets the outer size of the editor including its frame.
func (e *Editor) SetDimensions(width, height int) {
	e.width = width
	e.height = height

	frameW, frameH := e.styles.Editor.GetFrameSize()
	innerW := max(width-frameW, minWidth)
	innerH := max(height-frameH, minHeight)
	e.textarea.SetWidth(innerW)
	e.textarea.SetHeight(innerH)
}

// Width returns the current width.
func (e *Editor) Width() int {
	return e.width
}

// Height returns the current height.
func (e *Editor) Height() int {
	return e.height
}

// Reset clears the editor.
func (e *Editor) Reset() {
	e.textarea.Reset()
}
