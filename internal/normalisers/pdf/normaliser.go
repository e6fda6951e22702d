// Package pdf extracts text from PDF files with poppler's pdftotext.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// ToolName is the external command used for extraction.
const ToolName = "pdftotext"

// ErrPDFToolNotFound is returned when pdftotext is not on PATH.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// maxTitleLen is the longest first line accepted as a title.
const maxTitleLen = 200

var (
	hyphenBreak = regexp.MustCompile(`(\p{L})-\n(\p{Ll})`)
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
)

// CommandRunner runs an external command and returns its standard output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, ErrPDFToolNotFound
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

// Normaliser handles PDF documents.
type Normaliser struct {
	runner CommandRunner
}

// New creates a PDF normaliser that shells out to pdftotext.
func New() *Normaliser {
	return &Normaliser{runner: execRunner{}}
}

// NewWithRunner creates a PDF normaliser with a custom command runner.
func NewWithRunner(runner CommandRunner) *Normaliser {
	return &Normaliser{runner: runner}
}

// CheckAvailable reports whether pdftotext can be found on PATH.
func CheckAvailable() error {
	if _, err := exec.LookPath(ToolName); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns a hint for installing pdftotext.
func InstallInstructions() string {
	return `PDF support requires pdftotext from poppler:
  macOS:         brew install poppler
  Debian/Ubuntu: apt install poppler-utils
  Fedora:        dnf install poppler-utils`
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise writes the PDF to a temporary file and extracts its text in
// reading order. Page breaks become paragraph breaks and words hyphenated
// across lines are rejoined.
func (n *Normaliser) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	tmp, err := os.CreateTemp("", "precis-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("pdf: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw.Content); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("pdf: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("pdf: close temp file: %w", err)
	}

	out, err := n.runner.Run(ctx, ToolName, "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		if errors.Is(err, ErrPDFToolNotFound) {
			return nil, fmt.Errorf("pdf: %w", err)
		}
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}

	content := cleanText(string(out))
	title := extractTitle(content, raw.URI)
	if t, ok := raw.Metadata["title"].(string); ok && t != "" {
		title = t
	}

	return normalisers.NewResult(raw, title, content, "pdf"), nil
}

// cleanText tidies pdftotext output.
func cleanText(text string) string {
	text = strings.ToValidUTF8(text, "\uFFFD")
	text = strings.ReplaceAll(text, "\f", "\n\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = hyphenBreak.ReplaceAllString(text, "$1$2")
	text = spaceRuns.ReplaceAllString(text, " ")
	return normalisers.TidyText(text)
}

// extractTitle returns the first non-empty line shorter than maxTitleLen,
// or a title derived from the file name.
func extractTitle(content, uri string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && len(line) < maxTitleLen {
			return line
		}
	}
	return normalisers.TitleFromURI(uri, nil)
}
