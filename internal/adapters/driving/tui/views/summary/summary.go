// Package summary provides the summary result view for the TUI.
package summary

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// EmptyMessage is shown when the text yielded no usable sentence.
const EmptyMessage = "Not enough text to summarise."

// chromeHeight is the number of rows used by the header, footer and status bar.
const chromeHeight = 6

// View shows the selected sentences of the last summary.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.SentenceList
	statusbar *status.Bar

	summary *domain.Summary
	width   int
	height  int
}

// NewView creates a new summary view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StateSummary)

	v := &View{
		styles:    s,
		keymap:    km,
		list:      list.NewSentenceList(s),
		statusbar: bar,
	}
	v.SetCount(domain.DefaultSentenceCount)
	v.SetDimensions(80, 24)
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the summary view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewEditor}
			}
		case key.Matches(msg, v.keymap.Scores):
			v.list.ToggleScores()
			return v, nil
		}
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View renders the summary view.
func (v *View) View() string {
	header := v.styles.Title.Render("Summary")

	var body string
	if v.summary.IsEmpty() {
		if v.summary != nil && v.summary.Total > 0 {
			body = v.styles.Muted.Render("No sentences requested.")
		} else {
			body = v.styles.Warning.Render(EmptyMessage)
		}
	} else {
		body = v.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header, "", body, "", v.footer(), v.statusbar.View())
}

// footer describes how the summary relates to the source text.
func (v *View) footer() string {
	if v.summary == nil || v.summary.Total == 0 {
		return ""
	}
	text := fmt.Sprintf("%d of %d sentences", len(v.summary.Sentences), v.summary.Total)
	if v.summary.Iterations > 0 {
		if v.summary.Converged {
			text += fmt.Sprintf(" · converged after %d iterations", v.summary.Iterations)
		} else {
			text += fmt.Sprintf(" · stopped after %d iterations without converging", v.summary.Iterations)
		}
	}
	return v.styles.Muted.Render(text)
}

// SetSummary shows summary. A nil summary renders the empty message.
func (v *View) SetSummary(summary *domain.Summary) {
	v.summary = summary
	if summary == nil {
		v.list.SetSentences(nil)
		return
	}
	v.list.SetSentences(summary.Sentences)
	switch {
	case summary.Language.IsSupported():
		v.statusbar.SetLanguage(summary.Language.Name())
	case summary.Language != "":
		v.statusbar.SetLanguage(summary.Language.String())
	}
}

// Summary returns the summary being shown.
func (v *View) Summary() *domain.Summary {
	return v.summary
}

// SetCount updates the displayed sentence count.
func (v *View) SetCount(count int) {
	v.statusbar.SetCount(count)
}

// Selected returns the index of the highlighted sentence.
func (v *View) Selected() int {
	return v.list.Selected()
}

// ShowScores reports whether scores are shown.
func (v *View) ShowScores() bool {
	return v.list.ShowScores()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-chromeHeight)
	v.statusbar.SetWidth(width)
}
