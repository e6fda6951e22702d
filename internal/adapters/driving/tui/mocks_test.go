package tui

import (
	"context"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// mockSummaryService is a mock implementation of driving.SummaryService.
type mockSummaryService struct {
	summary *domain.Summary
	err     error

	gotText string
	gotOpts domain.SummaryOptions
	calls   int
}

func (m *mockSummaryService) Summarise(
	_ context.Context,
	text string,
	opts domain.SummaryOptions,
) (*domain.Summary, error) {
	m.calls++
	m.gotText = text
	m.gotOpts = opts
	return m.summary, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) Validate() error { return m.err }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }
