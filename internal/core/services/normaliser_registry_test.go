package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
)

// mockNormaliser tags its output with its name.
type mockNormaliser struct {
	name      string
	mimeTypes []string
	priority  int
	err       error
}

func (m *mockNormaliser) SupportedMIMETypes() []string { return m.mimeTypes }
func (m *mockNormaliser) Priority() int                { return m.priority }

func (m *mockNormaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &driven.NormaliseResult{
		Document: domain.Document{
			URI:      raw.URI,
			Title:    m.name,
			Content:  string(raw.Content),
			Metadata: map[string]any{"normaliser": m.name},
		},
	}, nil
}

func TestNormaliserRegistry_SelectsHighestPriority(t *testing.T) {
	registry := NewNormaliserRegistry(
		&mockNormaliser{name: "plain", mimeTypes: []string{"text/plain", "text/markdown"}, priority: 5},
		&mockNormaliser{name: "markdown", mimeTypes: []string{"text/markdown"}, priority: 50},
	)

	result, err := registry.Normalise(context.Background(), &domain.RawDocument{
		URI: "notes.md", MIMEType: "text/markdown", Content: []byte("# Notes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "markdown", result.Document.Title)
}

func TestNormaliserRegistry_MIMEParameters(t *testing.T) {
	registry := NewNormaliserRegistry(&mockNormaliser{name: "html", mimeTypes: []string{"text/html"}, priority: 50})

	result, err := registry.Normalise(context.Background(), &domain.RawDocument{
		URI: "page.html", MIMEType: "Text/HTML; charset=utf-8",
	})

	require.NoError(t, err)
	assert.Equal(t, "html", result.Document.Title)
}

func TestNormaliserRegistry_TextFallback(t *testing.T) {
	registry := NewNormaliserRegistry(&mockNormaliser{name: "plain", mimeTypes: []string{"text/plain"}, priority: 5})

	result, err := registry.Normalise(context.Background(), &domain.RawDocument{
		URI: "main.go", MIMEType: "text/x-go", Content: []byte("package main"),
	})

	require.NoError(t, err)
	assert.Equal(t, "plain", result.Document.Title)
}

func TestNormaliserRegistry_Unsupported(t *testing.T) {
	registry := NewNormaliserRegistry(&mockNormaliser{name: "plain", mimeTypes: []string{"text/plain"}, priority: 5})

	_, err := registry.Normalise(context.Background(), &domain.RawDocument{
		URI: "image.png", MIMEType: "image/png",
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestNormaliserRegistry_NilDocument(t *testing.T) {
	registry := NewNormaliserRegistry()

	_, err := registry.Normalise(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormaliserRegistry_NormaliserError(t *testing.T) {
	failure := errors.New("corrupt")
	registry := NewNormaliserRegistry(&mockNormaliser{mimeTypes: []string{"application/pdf"}, priority: 50, err: failure})

	_, err := registry.Normalise(context.Background(), &domain.RawDocument{URI: "a.pdf", MIMEType: "application/pdf"})

	assert.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "a.pdf")
}

func TestNormaliserRegistry_SupportedMIMETypes(t *testing.T) {
	registry := NewNormaliserRegistry(
		&mockNormaliser{mimeTypes: []string{"text/plain", "text/markdown"}, priority: 5},
		&mockNormaliser{mimeTypes: []string{"application/pdf"}, priority: 50},
	)

	assert.Equal(t, []string{"application/pdf", "text/markdown", "text/plain"}, registry.SupportedMIMETypes())
}
