// Package mcp provides an MCP (Model Context Protocol) server adapter
// for cefrlex. It lets AI assistants resolve CEFR levels and annotate
// tokenized text against the local level table.
package mcp

import "errors"

// ErrMissingLevelService is returned when the level service is not provided.
var ErrMissingLevelService = errors.New("mcp: level service is required")
