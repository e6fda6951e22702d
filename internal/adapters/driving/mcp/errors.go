// Package mcp provides an MCP (Model Context Protocol) server adapter for precis.
// It lets AI assistants summarise text and local files through tool calls.
package mcp

import "errors"

var (
	// ErrMissingSummaryService is returned when the summary service is not provided.
	ErrMissingSummaryService = errors.New("mcp: summary service is required")

	// ErrMissingDocumentService is returned by summarize_file when no document service is wired.
	ErrMissingDocumentService = errors.New("mcp: document service is not configured")

	// ErrRateLimited is returned when tool calls exceed the configured rate.
	ErrRateLimited = errors.New("mcp: rate limit exceeded, retry shortly")
)
