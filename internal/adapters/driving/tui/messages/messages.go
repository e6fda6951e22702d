// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the text input view.
	ViewEditor ViewType = iota
	// ViewSummary shows the selected sentences.
	ViewSummary
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewSummary:
		return "summary"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SummaryRequested asks the app to summarise Text.
type SummaryRequested struct {
	Text string
}

// SummaryCompleted carries a summary back to the model.
// Err wraps domain.ErrEmptyInput when the text had no usable sentence.
type SummaryCompleted struct {
	Summary *domain.Summary
	Err     error
}

// SentenceCountChanged is sent when the requested summary length changes.
type SentenceCountChanged struct {
	Count int
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
