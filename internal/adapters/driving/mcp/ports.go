package mcp

import (
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Level resolves word levels.
	Level driving.LevelService

	// Annotator annotates tokenized documents.
	Annotator driving.AnnotatorService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Level == nil {
		return ErrMissingLevelService
	}
	// Annotator is optional: without it only word tools are registered.
	return nil
}
