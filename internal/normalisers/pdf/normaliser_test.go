package pdf

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
)

// mockRunner is a test double for CommandRunner.
type mockRunner struct {
	output []byte
	err    error

	name    string
	args    []string
	fileHad []byte
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	m.name = name
	m.args = args
	// The input file is the second to last argument.
	if len(args) >= 2 {
		m.fileHad, _ = os.ReadFile(args[len(args)-2])
	}
	return m.output, m.err
}

func pdfDocument() *domain.RawDocument {
	return &domain.RawDocument{
		URI:      "/path/to/document.pdf",
		MIMEType: "application/pdf",
		Content:  []byte("%PDF-1.4 fake pdf content"),
	}
}

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, execRunner{}, normaliser.runner)
}

func TestSupportedMIMETypes(t *testing.T) {
	assert.Equal(t, []string{"application/pdf"}, New().SupportedMIMETypes())
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New().Priority())
}

func TestNormalise_NilDocument(t *testing.T) {
	result, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		uri      string
		expected string
	}{
		{"first line as title", "Document Title\n\nSome content here.", "/doc.pdf", "Document Title"},
		{"skip empty lines", "\n\n\nActual Title\nContent", "/doc.pdf", "Actual Title"},
		{"fallback to filename", "", "/path/to/my_document.pdf", "my document"},
		{"skip very long first line", strings.Repeat("x", 250) + "\nShort Title\nContent", "/doc.pdf", "Short Title"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractTitle(tc.content, tc.uri))
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"page breaks", "Page one.\fPage two.", "Page one.\n\nPage two."},
		{"hyphenation rejoined", "an exam-\nple here", "an example here"},
		{"proper compound kept", "Anglo-\nSaxon", "Anglo-\nSaxon"},
		{"space runs", "wide    gap\there", "wide gap here"},
		{"blank runs", "a\n\n\n\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanText(tt.input))
		})
	}
}

func TestInstallInstructions(t *testing.T) {
	instructions := InstallInstructions()
	assert.Contains(t, instructions, "pdftotext")
	assert.Contains(t, instructions, "brew install poppler")
	assert.Contains(t, instructions, "apt install poppler-utils")
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}

func TestErrPDFToolNotFound(t *testing.T) {
	assert.Contains(t, ErrPDFToolNotFound.Error(), "pdftotext")
}

func TestNewWithRunner(t *testing.T) {
	runner := &mockRunner{output: []byte("test output")}
	normaliser := NewWithRunner(runner)
	require.NotNil(t, normaliser)
	assert.Equal(t, runner, normaliser.runner)
}

func TestNormalise_WithMockRunner(t *testing.T) {
	runner := &mockRunner{output: []byte("PDF Title\n\nThis is the content of the PDF.\n")}

	result, err := NewWithRunner(runner).Normalise(context.Background(), pdfDocument())
	require.NoError(t, err)
	require.NotNil(t, result)

	doc := result.Document
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "/path/to/document.pdf", doc.URI)
	assert.Equal(t, "PDF Title", doc.Title)
	assert.Equal(t, "PDF Title\n\nThis is the content of the PDF.", doc.Content)
	assert.Equal(t, "application/pdf", doc.Metadata["mime_type"])
	assert.Equal(t, "pdf", doc.Metadata["format"])

	assert.Equal(t, ToolName, runner.name)
	assert.Equal(t, "-", runner.args[len(runner.args)-1])
	assert.Equal(t, []byte("%PDF-1.4 fake pdf content"), runner.fileHad)
}

func TestNormalise_TempFileRemoved(t *testing.T) {
	runner := &mockRunner{output: []byte("Text.")}

	_, err := NewWithRunner(runner).Normalise(context.Background(), pdfDocument())
	require.NoError(t, err)

	path := runner.args[len(runner.args)-2]
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNormalise_MetadataTitleWins(t *testing.T) {
	raw := pdfDocument()
	raw.Metadata = map[string]any{"title": "Given Title"}

	result, err := NewWithRunner(&mockRunner{output: []byte("Heading\n\nBody.")}).Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Given Title", result.Document.Title)
}

func TestNormalise_RunnerError(t *testing.T) {
	runner := &mockRunner{err: errors.New("pdftotext crashed")}

	result, err := NewWithRunner(runner).Normalise(context.Background(), pdfDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdftotext failed")
	assert.Nil(t, result)
}

func TestNormalise_ToolMissing(t *testing.T) {
	runner := &mockRunner{err: ErrPDFToolNotFound}

	result, err := NewWithRunner(runner).Normalise(context.Background(), pdfDocument())
	assert.ErrorIs(t, err, ErrPDFToolNotFound)
	assert.Nil(t, result)
}

// Integration test - only runs if pdftotext is available.
func TestCheckAvailable(t *testing.T) {
	if err := CheckAvailable(); err != nil {
		assert.ErrorIs(t, err, ErrPDFToolNotFound)
		t.Skip("pdftotext not available")
	}
}
