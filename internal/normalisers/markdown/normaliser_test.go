package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New().SupportedMIMETypes()

	assert.Contains(t, mimeTypes, "text/markdown")
	assert.Contains(t, mimeTypes, "text/x-markdown")
	assert.Len(t, mimeTypes, 2)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New().Priority())
}

func TestNormalise_Success(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/path/to/document.md",
		MIMEType: "text/markdown",
		Content:  []byte("# Hello World\n\nThis is a test."),
	}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, result)

	doc := result.Document
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, raw.URI, doc.URI)
	assert.Equal(t, "Hello World", doc.Title)
	assert.Equal(t, "Hello World\n\nThis is a test.", doc.Content)
	assert.Equal(t, "text/markdown", doc.Metadata["mime_type"])
	assert.Equal(t, "markdown", doc.Metadata["format"])
}

func TestNormalise_NilDocument(t *testing.T) {
	result, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestNormalise_EmptyContent(t *testing.T) {
	raw := &domain.RawDocument{URI: "/empty.md", MIMEType: "text/markdown"}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Empty(t, result.Document.Content)
	assert.Equal(t, "empty", result.Document.Title)
}

func TestNormalise_TitleExtraction(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		uri      string
		expected string
	}{
		{"first h1", "# Main Title\n\nBody.", "/doc.md", "Main Title"},
		{"h1 after h2", "## Sub\n\n# Real Title", "/doc.md", "Real Title"},
		{"inline markup in heading", "# The *quick* [fox](http://x)", "/doc.md", "The quick fox"},
		{"h1 inside fence ignored", "```\n# not a title\n```\n\nBody.", "/my_notes.md", "my notes"},
		{"no heading", "Just text.", "/path/release-notes.md", "release notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &domain.RawDocument{URI: tt.uri, MIMEType: "text/markdown", Content: []byte(tt.content)}
			result, err := New().Normalise(context.Background(), raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Document.Title)
		})
	}
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"headings become paragraphs", "# Title\nFirst line.", "Title\n\nFirst line."},
		{"setext heading", "Title\n=====\nBody.", "Title\n\nBody."},
		{"bold and italic", "Some **bold** and *italic* and __strong__ text.", "Some bold and italic and strong text."},
		{"snake case kept", "Call read_file_now here.", "Call read_file_now here."},
		{"links keep text", "See [the docs](https://example.com) now.", "See the docs now."},
		{"reference links", "See [the docs][1].\n\n[1]: https://example.com", "See the docs."},
		{"images keep alt", "![A chart](chart.png)", "A chart"},
		{"inline code keeps text", "Run `make test` first.", "Run make test first."},
		{"fenced code dropped", "Before.\n\n```go\nfunc main() {}\n```\n\nAfter.", "Before.\n\nAfter."},
		{"list items split", "- one\n- two\n* three\n1. four", "one\n\ntwo\n\nthree\n\nfour"},
		{"task list", "- [x] done item", "done item"},
		{"blockquote", "> Quoted line.\n> Still quoted.", "Quoted line.\nStill quoted."},
		{"horizontal rule", "Above.\n\n---\n\nBelow.", "Above.\n\nBelow."},
		{"table dropped", "Intro.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\nOutro.", "Intro.\n\nOutro."},
		{"html removed", "Text <b>bold</b> here.<!-- hidden -->", "Text bold here."},
		{"front matter", "---\ntitle: x\n---\nBody.", "Body."},
		{"strikethrough", "This is ~~wrong~~ right.", "This is wrong right."},
		{"indented code dropped", "Para.\n\n    code line\n\nNext.", "Para.\n\nNext."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripMarkdown(tt.input))
		})
	}
}

func TestNormalise_ComplexMarkdown(t *testing.T) {
	content := `# Project Overview

This project provides **extractive** summaries.
It ranks sentences with a [graph method](https://example.com).

## Features

- Fast ranking
- Multiple languages

` + "```bash\nprecis summarize notes.md\n```" + `

> Summaries keep the original wording.
`

	raw := &domain.RawDocument{URI: "/README.md", MIMEType: "text/markdown", Content: []byte(content)}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	expected := "Project Overview\n\n" +
		"This project provides extractive summaries.\nIt ranks sentences with a graph method.\n\n" +
		"Features\n\n" +
		"Fast ranking\n\n" +
		"Multiple languages\n\n" +
		"Summaries keep the original wording."
	assert.Equal(t, expected, result.Document.Content)
	assert.NotContains(t, result.Document.Content, "precis summarize")
}

func TestNormalise_MetadataPreserved(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/doc.md",
		MIMEType: "text/markdown",
		Content:  []byte("# Test"),
		Metadata: map[string]any{"size": int64(6)},
	}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.Document.Metadata["size"])
	assert.Equal(t, "markdown", result.Document.Metadata["format"])
	assert.Len(t, raw.Metadata, 1)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = New()
}
