package services

import (
	"context"
	"fmt"
	"mime"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/logger"
)

// Ensure NormaliserRegistry implements the interface.
var _ driven.NormaliserRegistry = (*NormaliserRegistry)(nil)

// fallbackMIMEType is tried when no normaliser handles a document's type.
const fallbackMIMEType = "text/plain"

// NormaliserRegistry dispatches raw documents to the highest priority
// normaliser registered for their MIME type.
type NormaliserRegistry struct {
	mu     sync.RWMutex
	byType map[string][]driven.Normaliser
}

// NewNormaliserRegistry creates a registry holding the given normalisers.
func NewNormaliserRegistry(normalisers ...driven.Normaliser) *NormaliserRegistry {
	r := &NormaliserRegistry{
		byType: make(map[string][]driven.Normaliser),
	}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser for each MIME type it supports.
func (r *NormaliserRegistry) Register(normaliser driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, mimeType := range normaliser.SupportedMIMETypes() {
		key := baseMIMEType(mimeType)
		list := append(r.byType[key], normaliser)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Priority() > list[j].Priority()
		})
		r.byType[key] = list
	}
}

// Normalise transforms raw using the best matching normaliser. Documents
// whose type is a text/* subtype without a dedicated normaliser fall back to
// the plain text normaliser. Other unknown types return
// domain.ErrUnsupportedType.
func (r *NormaliserRegistry) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}

	mimeType := baseMIMEType(raw.MIMEType)
	normaliser := r.lookup(mimeType)
	if normaliser == nil && strings.HasPrefix(mimeType, "text/") {
		normaliser = r.lookup(fallbackMIMEType)
	}
	if normaliser == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType)
	}

	logger.Debug("Normalising %s as %s (priority %d)", raw.URI, mimeType, normaliser.Priority())
	result, err := normaliser.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalise %s: %w", raw.URI, err)
	}
	return result, nil
}

// SupportedMIMETypes returns every registered MIME type, sorted.
func (r *NormaliserRegistry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func (r *NormaliserRegistry) lookup(mimeType string) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if list := r.byType[mimeType]; len(list) > 0 {
		return list[0]
	}
	return nil
}

// baseMIMEType lowercases a MIME type and strips its parameters.
func baseMIMEType(mimeType string) string {
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		return mediaType
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
