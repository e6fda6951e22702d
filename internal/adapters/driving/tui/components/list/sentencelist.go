// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

const bullet = "•"

// SentenceList displays summary sentences in a navigable list.
type SentenceList struct {
	sentences  []domain.Sentence
	selected   int
	showScores bool
	styles     *styles.Styles
	width      int
	height     int
}

// NewSentenceList creates a new sentence list component.
func NewSentenceList(s *styles.Styles) *SentenceList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &SentenceList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the sentence list.
func (l *SentenceList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *SentenceList) Update(msg tea.Msg) (*SentenceList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible sentences, wrapped to the list width.
func (l *SentenceList) View() string {
	if len(l.sentences) == 0 {
		return l.styles.Muted.Render("No sentences")
	}

	textWidth := max(l.width-4, 10)
	blocks := make([]string, 0, len(l.sentences))
	used := 0
	for i := l.firstVisible(textWidth); i < len(l.sentences); i++ {
		block := l.renderSentence(i, textWidth)
		lines := lipgloss.Height(block)
		if used > 0 && used+lines > l.height {
			break
		}
		blocks = append(blocks, block)
		used += lines
	}
	return strings.Join(blocks, "\n")
}

// firstVisible returns the first index to render so the selection stays on screen.
func (l *SentenceList) firstVisible(textWidth int) int {
	start := l.selected
	used := lipgloss.Height(l.renderSentence(start, textWidth))
	for start > 0 {
		lines := lipgloss.Height(l.renderSentence(start-1, textWidth))
		if used+lines > l.height {
			break
		}
		used += lines
		start--
	}
	return start
}

// renderSentence formats one sentence as a wrapped bullet.
func (l *SentenceList) renderSentence(index int, textWidth int) string {
	sentence := l.sentences[index]

	marker := l.styles.Bullet.Render(bullet)
	if index == l.selected {
		marker = l.styles.Bullet.Render("▸")
	}

	text := sentence.Text
	if l.showScores {
		text += " " + l.styles.Score.Render(fmt.Sprintf("(%.4f, #%d)", sentence.Score, sentence.Position+1))
	}

	body := l.styles.Normal.Width(textWidth).Render(text)
	if index == l.selected {
		body = l.styles.Highlight.Width(textWidth).Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, marker+" ", body)
}

// SetSentences replaces the listed sentences and resets the selection.
func (l *SentenceList) SetSentences(sentences []domain.Sentence) {
	l.sentences = sentences
	l.selected = 0
}

// Sentences returns the listed sentences.
func (l *SentenceList) Sentences() []domain.Sentence {
	return l.sentences
}

// Selected returns the index of the selected sentence.
func (l *SentenceList) Selected() int {
	return l.selected
}

// MoveUp moves selection up.
func (l *SentenceList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *SentenceList) MoveDown() {
	if l.selected < len(l.sentences)-1 {
		l.selected++
	}
}

// ToggleScores shows or hides centrality scores.
func (l *SentenceList) ToggleScores() {
	l.showScores = !l.showScores
}

// ShowScores reports whether scores are shown.
func (l *SentenceList) ShowScores() bool {
	return l.showScores
}

// SetDimensions sets the component dimensions.
func (l *SentenceList) SetDimensions(width, height int) {
	l.width = width
	l.height = max(height, 1)
}

// Count returns the number of sentences.
func (l *SentenceList) Count() int {
	return len(l.sentences)
}
