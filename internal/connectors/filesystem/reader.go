package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// DefaultMaxSize is the largest document read by default (50 MiB).
const DefaultMaxSize int64 = 50 << 20

// ErrTooLarge indicates a document exceeds the reader's size limit.
var ErrTooLarge = errors.New("document too large")

// Reader loads documents from the local filesystem.
type Reader struct {
	stdin     io.Reader
	stdinType string
	maxSize   int64
}

// Option configures a Reader.
type Option func(*Reader)

// WithStdin sets the stream read for StdinPath.
func WithStdin(r io.Reader) Option {
	return func(rd *Reader) {
		rd.stdin = r
	}
}

// WithStdinType sets the MIME type assumed for standard input.
func WithStdinType(mimeType string) Option {
	return func(rd *Reader) {
		if mimeType != "" {
			rd.stdinType = mimeType
		}
	}
}

// WithMaxSize sets the size limit in bytes. Zero or negative disables it.
func WithMaxSize(n int64) Option {
	return func(rd *Reader) {
		rd.maxSize = n
	}
}

// NewReader creates a filesystem reader.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		stdin:     os.Stdin,
		stdinType: "text/plain",
		maxSize:   DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read returns the document at path. StdinPath reads standard input.
func (r *Reader) Read(ctx context.Context, path string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path = ResolvePath(path)
	if path == "" {
		return nil, fmt.Errorf("empty path: %w", domain.ErrInvalidInput)
	}
	if path == StdinPath {
		return r.readStdin()
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.ErrInvalidInput)
	}
	if r.maxSize > 0 && info.Size() > r.maxSize {
		return nil, fmt.Errorf("%s is %d bytes, limit %d: %w", path, info.Size(), r.maxSize, ErrTooLarge)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return &domain.RawDocument{
		URI:      abs,
		MIMEType: detectMIMEType(path),
		Content:  content,
		Metadata: map[string]any{
			"name":     info.Name(),
			"size":     info.Size(),
			"modified": info.ModTime(),
		},
	}, nil
}

func (r *Reader) readStdin() (*domain.RawDocument, error) {
	if r.stdin == nil {
		return nil, fmt.Errorf("stdin: %w", domain.ErrInvalidInput)
	}

	src := r.stdin
	if r.maxSize > 0 {
		src = io.LimitReader(r.stdin, r.maxSize+1)
	}
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if r.maxSize > 0 && int64(len(content)) > r.maxSize {
		return nil, fmt.Errorf("stdin exceeds %d bytes: %w", r.maxSize, ErrTooLarge)
	}

	return &domain.RawDocument{
		URI:      StdinPath,
		MIMEType: r.stdinType,
		Content:  content,
		Metadata: map[string]any{"size": int64(len(content))},
	}, nil
}
