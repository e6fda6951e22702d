package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/views/editor"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/views/summary"
	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// Sentence count bounds for interactive adjustment.
const (
	MinSentences = 1
	MaxSentences = 50
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	editorView  *editor.View
	summaryView *summary.View

	// opts are the options passed to every summarisation call.
	opts domain.SummaryOptions

	// text is the input of the last summary request.
	text string

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is restored when leaving help.
	previousView messages.ViewType

	// busy is set while a summary is being computed.
	busy bool

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		editorView:  editor.NewView(s, km),
		summaryView: summary.NewView(s, km),
		opts:        domain.DefaultSummaryOptions(),
		currentView: messages.ViewEditor,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("precis"),
		a.loadSettings(),
		a.editorView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.SettingsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.editorView.SetError(fmt.Errorf("loading settings: %w", msg.Err))
			return a, nil
		}
		if msg.Settings != nil {
			a.opts = msg.Settings.Summary.Options()
			a.opts.SentenceCount = clampCount(a.opts.SentenceCount)
			a.syncCount()
			a.editorView.SetLanguage(a.opts.Language)
		}
		return a, nil

	case messages.SummaryRequested:
		a.text = msg.Text
		return a, a.summarise()

	case messages.SentenceCountChanged:
		a.opts.SentenceCount = clampCount(msg.Count)
		a.syncCount()
		if a.currentView == messages.ViewSummary && a.text != "" {
			return a, a.summarise()
		}
		return a, nil

	case messages.SummaryCompleted:
		return a.handleSummaryCompleted(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewEditor {
			// The cursor stays solid until the next blink cycle.
			a.editorView.Focus()
			return a, nil
		}
		a.editorView.Blur()
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.editorView, cmd = a.editorView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the active view
	switch a.currentView {
	case messages.ViewEditor:
		a.editorView, cmd = a.editorView.Update(msg)
	case messages.ViewSummary:
		a.summaryView, cmd = a.summaryView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// handleKeyMsg applies global bindings before delegating to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			return a, changeView(a.previousView)
		}
		a.previousView = a.currentView
		return a, changeView(messages.ViewHelp)

	case key.Matches(msg, a.keymap.More):
		return a, changeCount(a.opts.SentenceCount + 1)

	case key.Matches(msg, a.keymap.Fewer):
		return a, changeCount(a.opts.SentenceCount - 1)
	}

	switch a.currentView {
	case messages.ViewEditor:
		if a.busy && key.Matches(msg, a.keymap.Summarise) {
			return a, nil
		}
		a.editorView, cmd = a.editorView.Update(msg)
	case messages.ViewSummary:
		a.summaryView, cmd = a.summaryView.Update(msg)
	case messages.ViewHelp:
		if key.Matches(msg, a.keymap.Back) {
			return a, changeView(a.previousView)
		}
	}
	return a, cmd
}

// handleSummaryCompleted shows the result or the error in the right view.
func (a *App) handleSummaryCompleted(msg messages.SummaryCompleted) (tea.Model, tea.Cmd) {
	a.busy = false

	if msg.Err != nil && !errors.Is(msg.Err, domain.ErrEmptyInput) {
		a.err = msg.Err
		a.editorView.SetError(msg.Err)
		return a, changeView(messages.ViewEditor)
	}

	a.err = nil
	a.editorView.SetError(nil)
	a.summaryView.SetSummary(msg.Summary)
	return a, changeView(messages.ViewSummary)
}

// summarise runs the summary service over the last requested text.
func (a *App) summarise() tea.Cmd {
	a.busy = true
	ctx, text, opts := a.ctx, a.text, a.opts
	service := a.ports.Summary
	return func() tea.Msg {
		s, err := service.Summarise(ctx, text, opts)
		return messages.SummaryCompleted{Summary: s, Err: err}
	}
}

// loadSettings fetches the configured defaults, if a settings port is wired.
func (a *App) loadSettings() tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}
	service := a.ports.Settings
	return func() tea.Msg {
		settings, err := service.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

func (a *App) syncCount() {
	a.editorView.SetCount(a.opts.SentenceCount)
	a.summaryView.SetCount(a.opts.SentenceCount)
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

func changeCount(count int) tea.Cmd {
	return func() tea.Msg {
		return messages.SentenceCountChanged{Count: count}
	}
}

func clampCount(n int) int {
	return min(max(n, MinSentences), MaxSentences)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSummary:
		return a.summaryView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.editorView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	out := a.styles.Title.Render("Help") + "\n\n"
	for _, group := range a.keymap.FullHelp() {
		for _, b := range group {
			h := b.Help()
			out += fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc)
		}
		out += "\n"
	}
	return out + a.styles.Help.Render("[esc] back")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Options returns the options used for the next summary.
func (a *App) Options() domain.SummaryOptions {
	return a.opts
}

// Busy reports whether a summary is being computed.
func (a *App) Busy() bool {
	return a.busy
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.editorView.SetDimensions(width, height)
	a.summaryView.SetDimensions(width, height)
}
