package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New().SupportedMIMETypes()

	require.NotEmpty(t, mimeTypes)
	assert.Contains(t, mimeTypes, "text/plain")
	assert.Contains(t, mimeTypes, "text/x-go")
	assert.Contains(t, mimeTypes, "application/json")
	assert.NotContains(t, mimeTypes, "text/html")
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 5, New().Priority())
}

func TestNormalise_Success(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/path/to/document.txt",
		MIMEType: "text/plain",
		Content:  []byte("This is plain text content."),
	}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, result)

	doc := result.Document
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, raw.URI, doc.URI)
	assert.Equal(t, "document", doc.Title)
	assert.Equal(t, "This is plain text content.", doc.Content)
	assert.Equal(t, "text/plain", doc.Metadata["mime_type"])
	assert.Equal(t, "text", doc.Metadata["format"])
}

func TestNormalise_NilDocument(t *testing.T) {
	result, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestNormalise_EmptyContent(t *testing.T) {
	raw := &domain.RawDocument{URI: "/empty.txt", MIMEType: "text/plain"}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Empty(t, result.Document.Content)
}

func TestNormalise_Tidy(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		expected string
	}{
		{"crlf", []byte("First line.\r\nSecond line.\r\n"), "First line.\nSecond line."},
		{"blank runs", []byte("Para one.\n\n\n\nPara two."), "Para one.\n\nPara two."},
		{"bom", []byte("\xEF\xBB\xBFHello."), "Hello."},
		{"invalid utf8", []byte("caf\xff."), "caf\uFFFD."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &domain.RawDocument{URI: "x.txt", MIMEType: "text/plain", Content: tt.content}
			result, err := New().Normalise(context.Background(), raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Document.Content)
		})
	}
}

func TestNormalise_TitleFromMetadata(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/tmp/abc123",
		MIMEType: "text/plain",
		Content:  []byte("Body."),
		Metadata: map[string]any{"title": "Quarterly Notes"},
	}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly Notes", result.Document.Title)
}

func TestNormalise_Stdin(t *testing.T) {
	raw := &domain.RawDocument{URI: "-", MIMEType: "text/plain", Content: []byte("Piped.")}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "-", result.Document.URI)
	assert.Empty(t, result.Document.Title)
}

func TestNormalise_DoesNotMutateMetadata(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "a.txt",
		MIMEType: "text/plain",
		Metadata: map[string]any{"size": 5},
	}

	_, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"size": 5}, raw.Metadata)
}
