package tui

import "errors"

// ErrMissingSummaryService is returned when the summary service is not provided.
var ErrMissingSummaryService = errors.New("tui: summary service is required")
