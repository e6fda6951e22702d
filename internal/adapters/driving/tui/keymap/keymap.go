// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
// Editor bindings avoid printable keys so typing is never intercepted.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Summarise runs the summariser over the editor text.
	Summarise key.Binding

	// Clear empties the editor.
	Clear key.Binding

	// More asks for one more sentence.
	More key.Binding

	// Fewer asks for one fewer sentence.
	Fewer key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Scores toggles centrality scores in the summary view.
	Scores key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Summarise: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "summarise"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		More: key.NewBinding(
			key.WithKeys("alt+up", "ctrl+up"),
			key.WithHelp("alt+↑", "more"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("alt+down", "ctrl+down"),
			key.WithHelp("alt+↓", "fewer"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scores"),
		),
	}
}

// EditorHelp returns keybindings shown while editing text.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Summarise, k.More, k.Fewer, k.Help, k.Quit}
}

// SummaryHelp returns keybindings shown in the summary view.
func (k *KeyMap) SummaryHelp() []key.Binding {
	return []key.Binding{k.More, k.Fewer, k.Scores, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Summarise, k.Clear},
		{k.More, k.Fewer},
		{k.Up, k.Down, k.Scores},
		{k.Back, k.Help, k.Quit},
	}
}
