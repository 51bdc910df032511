package tui

import "errors"

// ErrMissingLevelService is returned when the TUI is created without a
// level service.
var ErrMissingLevelService = errors.New("tui: level service is required")
