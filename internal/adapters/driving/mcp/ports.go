package mcp

import (
	"github.com/custodia-labs/precis-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Summary summarises plain text.
	Summary driving.SummaryService

	// Document summarises files. Optional; summarize_file fails without it.
	Document driving.DocumentService

	// Settings supplies default options. Optional; built-in defaults are used without it.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Summary == nil {
		return ErrMissingSummaryService
	}
	return nil
}
