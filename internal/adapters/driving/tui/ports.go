// Package tui provides an interactive terminal user interface for cefrlex.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Level resolves CEFR difficulty levels for words.
	Level driving.LevelService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(level driving.LevelService) *Ports {
	return &Ports{Level: level}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Level == nil {
		return ErrMissingLevelService
	}
	return nil
}
