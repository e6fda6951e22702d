// Package editor provides the text entry view for the TUI.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// chromeHeight is the number of rows used by the header and status bar.
const chromeHeight = 4

// View is the text entry view with an editor and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	editor    *input.Editor
	statusbar *status.Bar

	width  int
	height int
	err    error
}

// NewView creates a new editor view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		editor:    input.NewEditor(s),
		statusbar: status.NewBar(s, km),
	}
	v.SetCount(domain.DefaultSentenceCount)
	v.SetLanguage(domain.DefaultLanguage)
	v.SetDimensions(80, 24)
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.editor.Init()
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ErrorOccurred:
		v.SetError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Summarise):
		text := v.editor.Value()
		if strings.TrimSpace(text) == "" {
			v.statusbar.SetMessage("nothing to summarise")
			return v, nil
		}
		v.err = nil
		v.statusbar.Clear()
		v.statusbar.SetState(status.StateSummarising)
		return v, func() tea.Msg {
			return messages.SummaryRequested{Text: text}
		}

	case key.Matches(msg, v.keymap.Clear):
		v.editor.Reset()
		v.err = nil
		v.statusbar.Clear()
		return v, nil
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

// View renders the editor view.
func (v *View) View() string {
	header := v.styles.Title.Render("precis") + "  " +
		v.styles.Muted.Render("extractive summaries, one keystroke away")

	sections := []string{header, "", v.editor.View()}
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render(v.err.Error()))
	}
	sections = append(sections, v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetCount updates the displayed sentence count.
func (v *View) SetCount(count int) {
	v.statusbar.SetCount(count)
}

// SetLanguage updates the displayed language.
func (v *View) SetLanguage(lang domain.Language) {
	name := lang.Name()
	if !lang.IsSupported() {
		name = lang.String()
	}
	v.statusbar.SetLanguage(name)
}

// SetError shows an error below the editor.
func (v *View) SetError(err error) {
	v.err = err
	if err == nil {
		v.statusbar.Clear()
		return
	}
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// Value returns the edited text.
func (v *View) Value() string {
	return v.editor.Value()
}

// SetValue replaces the edited text.
func (v *View) SetValue(text string) {
	v.editor.SetValue(text)
}

// Focus focuses the editor.
func (v *View) Focus() tea.Cmd {
	return v.editor.Focus()
}

// Blur removes focus from the editor.
func (v *View) Blur() {
	v.editor.Blur()
}

// Err returns the last error shown.
func (v *View) Err() error {
	return v.err
}

// State returns the status bar state.
func (v *View) State() status.State {
	return v.statusbar.State()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.editor.SetDimensions(width, height-chromeHeight)
	v.statusbar.SetWidth(width)
}
