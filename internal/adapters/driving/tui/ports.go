// Package tui provides an interactive terminal user interface for precis.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/precis-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Summary produces summaries of the edited text (required).
	Summary driving.SummaryService

	// Settings supplies the initial sentence count and language (optional).
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(summary driving.SummaryService, settings driving.SettingsService) *Ports {
	return &Ports{
		Summary:  summary,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Summary == nil {
		return ErrMissingSummaryService
	}
	return nil
}
