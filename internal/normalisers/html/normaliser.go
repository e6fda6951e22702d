package html

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/logger"
	"github.com/custodia-labs/precis-cli/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// MinArticleChars is the shortest readability extraction that is trusted.
// Shorter pages are reduced with the block extractor instead.
const MinArticleChars = 250

// Elements removed before any text is extracted.
const chromeSelector = "head, script, style, noscript, template, svg, iframe, form, nav, header, footer, aside"

var blockElements = map[string]bool{
	"address": true, "article": true, "blockquote": true, "dd": true, "div": true,
	"dl": true, "dt": true, "figcaption": true, "figure": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "hr": true,
	"li": true, "main": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true, "ul": true,
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normaliser handles HTML documents.
type Normaliser struct {
	minArticleChars int
}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{minArticleChars: MinArticleChars}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise converts an HTML document to plain text.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := extractTitle(doc)
	if title == "" {
		title = normalisers.TitleFromURI(raw.URI, raw.Metadata)
	}

	doc.Find(chromeSelector).Remove()

	content := n.extractArticle(doc, raw.URI)
	extractor := "readability"
	if content == "" {
		content = extractBlocks(doc.Selection)
		extractor = "blocks"
	}
	logger.Debug("html: %s extracted %d chars via %s", raw.URI, utf8.RuneCountInString(content), extractor)

	result := normalisers.NewResult(raw, title, content, "html")
	result.Document.Metadata["extractor"] = extractor
	return result, nil
}

// extractArticle runs readability over the cleaned page. It returns an
// empty string when the page has no article long enough to trust.
func (n *Normaliser) extractArticle(doc *goquery.Document, uri string) string {
	cleaned, err := doc.Html()
	if err != nil {
		return ""
	}

	article, err := readability.FromReader(strings.NewReader(cleaned), pageURL(uri))
	if err != nil {
		logger.Debug("html: readability failed for %s: %v", uri, err)
		return ""
	}
	if utf8.RuneCountInString(strings.TrimSpace(article.TextContent)) < n.minArticleChars {
		return ""
	}

	// Re-walk the article markup so paragraph breaks survive.
	body, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return normalisers.TidyText(article.TextContent)
	}
	return extractBlocks(body.Selection)
}

// extractTitle returns the <title> text, or the first <h1> when there is none.
func extractTitle(doc *goquery.Document) string {
	if title := collapse(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return collapse(doc.Find("h1").First().Text())
}

// extractBlocks returns the text under sel with one paragraph per block element.
func extractBlocks(sel *goquery.Selection) string {
	var b strings.Builder
	writeBlocks(&b, sel)

	var paragraphs []string
	for _, p := range strings.Split(b.String(), "\n\n") {
		if p = collapse(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

func writeBlocks(b *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		switch name := goquery.NodeName(child); {
		case name == "#text":
			b.WriteString(whitespaceRun.ReplaceAllString(child.Text(), " "))
		case name == "br":
			b.WriteString(" ")
		case strings.HasPrefix(name, "#"):
			// Comments and doctype.
		case blockElements[name]:
			b.WriteString("\n\n")
			writeBlocks(b, child)
			b.WriteString("\n\n")
		default:
			writeBlocks(b, child)
		}
	})
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func pageURL(uri string) *url.URL {
	if u, err := url.Parse(uri); err == nil && u.Scheme != "" && u.Host != "" {
		return u
	}
	abs, err := filepath.Abs(uri)
	if err != nil {
		abs = uri
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
}
