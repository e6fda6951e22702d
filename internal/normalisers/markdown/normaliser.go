// Package markdown normalises Markdown documents to plain text.
package markdown

import (
	"bufio"
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

var (
	headingLine   = regexp.MustCompile(`^#{1,6}\s+(.*?)\s*#*$`)
	setextLine    = regexp.MustCompile(`^(=+|-+)\s*$`)
	ruleLine      = regexp.MustCompile(`^([-*_]\s*){3,}$`)
	bulletItem    = regexp.MustCompile(`^\s*[-*+]\s+(\[[ xX]\]\s+)?`)
	numberedItem  = regexp.MustCompile(`^\s*\d+[.)]\s+`)
	blockquote    = regexp.MustCompile(`^\s*(>\s?)+`)
	tableRow      = regexp.MustCompile(`^\s*\|.*\|\s*$`)
	referenceDef  = regexp.MustCompile(`^\s*\[[^\]]+\]:\s+\S+`)
	image         = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	inlineLink    = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	referenceLink = regexp.MustCompile(`\[([^\]]+)\]\[[^\]]*\]`)
	autoLink      = regexp.MustCompile(`<(https?://[^>]+)>`)
	inlineCode    = regexp.MustCompile("`+([^`]+)`+")
	strongStars   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	strongUnders  = regexp.MustCompile(`\b__([^_]+)__\b`)
	emStars       = regexp.MustCompile(`\*([^*\s][^*]*)\*`)
	emUnders      = regexp.MustCompile(`\b_([^_\s][^_]*)_\b`)
	strike        = regexp.MustCompile(`~~([^~]+)~~`)
	htmlComment   = regexp.MustCompile(`(?s)<!--.*?-->`)
	htmlTag       = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
)

// Normaliser handles Markdown documents.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise converts a markdown document to plain text. Headings and list
// items become paragraphs of their own; code blocks, tables and front
// matter are dropped.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	source := strings.ReplaceAll(string(raw.Content), "\r\n", "\n")
	title := extractTitle(source)
	if title == "" {
		title = normalisers.TitleFromURI(raw.URI, raw.Metadata)
	}

	return normalisers.NewResult(raw, title, stripMarkdown(source), "markdown"), nil
}

// extractTitle returns the text of the first level-one heading.
func extractTitle(content string) string {
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if isFence(trimmed) {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(trimmed, "# ") {
			return stripInline(strings.TrimSpace(strings.TrimLeft(trimmed, "# ")))
		}
	}
	return ""
}

// stripMarkdown removes markdown syntax and keeps the prose.
func stripMarkdown(content string) string {
	content = htmlComment.ReplaceAllString(content, "")

	var out strings.Builder
	var paragraph []string
	flush := func() {
		if len(paragraph) > 0 {
			out.WriteString(strings.Join(paragraph, "\n"))
			out.WriteString("\n\n")
			paragraph = paragraph[:0]
		}
	}
	block := func(text string) {
		flush()
		if text = stripInline(text); text != "" {
			out.WriteString(text)
			out.WriteString("\n\n")
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(skipFrontMatter(content)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inFence := false
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case isFence(trimmed):
			flush()
			inFence = !inFence
		case inFence:
		case trimmed == "":
			flush()
		case setextLine.MatchString(trimmed) && len(paragraph) == 1:
			// The previous line was a setext heading.
			heading := paragraph[0]
			paragraph = paragraph[:0]
			block(heading)
		case ruleLine.MatchString(trimmed):
			flush()
		case headingLine.MatchString(trimmed):
			block(headingLine.FindStringSubmatch(trimmed)[1])
		case tableRow.MatchString(trimmed), referenceDef.MatchString(trimmed):
			flush()
		case bulletItem.MatchString(line):
			block(bulletItem.ReplaceAllString(line, ""))
		case numberedItem.MatchString(line):
			block(numberedItem.ReplaceAllString(line, ""))
		case blockquote.MatchString(line):
			if text := strings.TrimSpace(blockquote.ReplaceAllString(line, "")); text != "" {
				paragraph = append(paragraph, stripInline(text))
			} else {
				flush()
			}
		case strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t"):
			// Indented code block, unless it continues a paragraph.
			if len(paragraph) > 0 {
				paragraph = append(paragraph, stripInline(trimmed))
			}
		default:
			paragraph = append(paragraph, stripInline(trimmed))
		}
	}
	flush()

	return normalisers.TidyText(out.String())
}

// stripInline removes inline markup from one line of text.
func stripInline(text string) string {
	text = image.ReplaceAllString(text, "$1")
	text = inlineLink.ReplaceAllString(text, "$1")
	text = referenceLink.ReplaceAllString(text, "$1")
	text = autoLink.ReplaceAllString(text, "$1")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = strongStars.ReplaceAllString(text, "$1")
	text = strongUnders.ReplaceAllString(text, "$1")
	text = emStars.ReplaceAllString(text, "$1")
	text = emUnders.ReplaceAllString(text, "$1")
	text = strike.ReplaceAllString(text, "$1")
	text = htmlTag.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func isFence(line string) bool {
	return strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~")
}

// skipFrontMatter drops a leading YAML front matter block.
func skipFrontMatter(content string) string {
	if !strings.HasPrefix(content, "---\n") {
		return content
	}
	end := strings.Index(content[4:], "\n---")
	if end < 0 {
		return content
	}
	rest := content[4+end+4:]
	return strings.TrimPrefix(rest, "\n")
}
