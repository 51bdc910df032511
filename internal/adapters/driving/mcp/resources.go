package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for cefrlex resources.
const uriScheme = "cefrlex://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the POS catalog.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "pos-tags",
		Name:        "pos-tags",
		Description: "The closed Penn Treebank part-of-speech catalog",
		MIMEType:    "application/json",
	}, s.handlePOSTagsResource)
}

// handlePOSTagsResource returns the POS catalog as JSON.
func (s *Server) handlePOSTagsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type tagEntry struct {
		Code        string `json:"code"`
		ID          int    `json:"id"`
		Description string `json:"description"`
	}

	catalog := make([]tagEntry, 0, domain.TotalPOSTags())
	for _, tag := range domain.AllPOSTags() {
		catalog = append(catalog, tagEntry{
			Code:        tag.String(),
			ID:          tag.ID(),
			Description: tag.Description(),
		})
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, fmt.Errorf("marshalling POS catalog: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
