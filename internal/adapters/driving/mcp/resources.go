package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/language"
)

const (
	// URIScheme is the custom URI scheme for precis resources.
	uriScheme = "precis://"
)

// languageInfo describes one language profile.
type languageInfo struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Stemmer   bool   `json:"stemmer"`
	StopWords int    `json:"stop_words"`
	Default   bool   `json:"default,omitempty"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "languages",
		Name:        "languages",
		Description: "Languages with dedicated stop words, abbreviations and stemmers",
		MIMEType:    "application/json",
	}, s.handleLanguagesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "languages/{code}",
		Name:        "language",
		Description: "Profile of a single language",
		MIMEType:    "application/json",
	}, s.handleLanguageResource)
}

// handleLanguagesResource returns all supported languages.
func (s *Server) handleLanguagesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	langs := domain.SupportedLanguages()
	infos := make([]languageInfo, len(langs))
	for i, code := range langs {
		infos[i] = describeLanguage(code)
	}
	return jsonResource(req.Params.URI, infos)
}

// handleLanguageResource returns the profile of one language.
func (s *Server) handleLanguageResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	code := extractLanguageCode(req.Params.URI)
	if code == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	lang, err := language.Parse(code)
	if err != nil || !language.Has(lang) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, describeLanguage(lang))
}

func describeLanguage(code domain.Language) languageInfo {
	profile := language.Lookup(code)
	return languageInfo{
		Code:      code.String(),
		Name:      code.Name(),
		Stemmer:   profile.HasStemmer(),
		StopWords: profile.StopWordCount(),
		Default:   code == domain.DefaultLanguage,
	}
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractLanguageCode extracts the code from a URI like precis://languages/{code}.
func extractLanguageCode(uri string) string {
	const prefix = uriScheme + "languages/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.Trim(strings.TrimPrefix(uri, prefix), "/")
}
