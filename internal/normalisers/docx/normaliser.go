// Package docx extracts paragraph text from Office Open XML documents.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const (
	documentPart = "word/document.xml"
	corePart     = "docProps/core.xml"

	// maxPartSize caps the decompressed size of a single archive part.
	maxPartSize = 64 << 20
)

// Normaliser handles DOCX documents.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise converts a DOCX document to plain text, one paragraph per
// Word paragraph. Table cells are read in document order.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	archive, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("docx: open archive: %w", domain.ErrInvalidInput)
	}

	body, err := readPart(archive, documentPart)
	if err != nil {
		return nil, fmt.Errorf("docx: %w", err)
	}
	content, err := parseDocumentXML(body)
	if err != nil {
		return nil, fmt.Errorf("docx: parse %s: %w", documentPart, domain.ErrInvalidInput)
	}

	title := coreTitle(archive)
	if title == "" {
		title = normalisers.TitleFromURI(raw.URI, raw.Metadata)
	}

	return normalisers.NewResult(raw, title, content, "docx"), nil
}

// readPart returns the decompressed bytes of the named archive part.
func readPart(archive *zip.Reader, name string) ([]byte, error) {
	file, err := archive.Open(name)
	if err != nil {
		return nil, fmt.Errorf("missing %s: %w", name, domain.ErrInvalidInput)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPartSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, domain.ErrInvalidInput)
	}
	if len(data) > maxPartSize {
		return nil, fmt.Errorf("%s exceeds %d bytes: %w", name, maxPartSize, domain.ErrInvalidInput)
	}
	return data, nil
}

// parseDocumentXML walks the WordprocessingML token stream and returns the
// text of each w:p element separated by blank lines.
func parseDocumentXML(content []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "tab", "br", "cr":
				current.WriteString(" ")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := strings.Join(strings.Fields(current.String()), " "); text != "" {
					paragraphs = append(paragraphs, text)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}

	return strings.Join(paragraphs, "\n\n"), nil
}

// coreXML represents the structure of docProps/core.xml.
type coreXML struct {
	Title string `xml:"title"`
}

// coreTitle reads dc:title from the document properties.
func coreTitle(archive *zip.Reader) string {
	data, err := readPart(archive, corePart)
	if err != nil {
		return ""
	}
	var core coreXML
	if err := xml.Unmarshal(data, &core); err != nil {
		return ""
	}
	return strings.TrimSpace(core.Title)
}
