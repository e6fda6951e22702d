// Package services implements the driving port interfaces.
//
// SummaryService runs the extractive pipeline: segment, rank, select.
// DocumentService reads and normalises files before handing their text to
// SummaryService. SettingsService reads and validates configuration.
//
// Services depend only on domain, the port interfaces and the OpenTelemetry
// trace API. Concrete segmenters, rankers and normalisers are injected.
package services
