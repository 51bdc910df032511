package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

// WordLevelInput is the input schema for the word_level tool.
type WordLevelInput struct {
	Word string `json:"word" jsonschema:"the English word to resolve"`
	POS  string `json:"pos,omitempty" jsonschema:"Penn Treebank POS tag; omit to average across the word's parts of speech"`
}

// WordLevelOutput is the output schema for the word_level tool.
type WordLevelOutput struct {
	Word  string  `json:"word"`
	POS   string  `json:"pos,omitempty"`
	Found bool    `json:"found"`
	Level float64 `json:"level,omitempty"`
	CEFR  string  `json:"cefr,omitempty"`
}

// WordProfileInput is the input schema for the word_profile tool.
type WordProfileInput struct {
	Word string `json:"word" jsonschema:"the English word to profile"`
}

// WordProfileOutput is the output schema for the word_profile tool.
type WordProfileOutput struct {
	Word    string             `json:"word"`
	Found   bool               `json:"found"`
	ByPOS   map[string]float64 `json:"by_pos,omitempty"`
	Average float64            `json:"average,omitempty"`
	CEFR    string             `json:"cefr,omitempty"`
}

// AnnotateInput is the input schema for the annotate tool.
type AnnotateInput struct {
	Tokens []domain.Token `json:"tokens" jsonschema:"externally tokenized document: surface, tag, optional entity and span per token"`
}

// AnnotateOutput is the output schema for the annotate tool.
type AnnotateOutput struct {
	Annotations []domain.Annotation `json:"annotations"`
	Count       int                 `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "word_level",
		Description: "Resolve the CEFR difficulty level of an English word",
	}, s.handleWordLevel)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "word_profile",
		Description: "List a word's recorded parts of speech with their CEFR levels",
	}, s.handleWordProfile)

	if s.ports.Annotator != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "annotate",
			Description: "Annotate a tokenized document with per-token CEFR levels",
		}, s.handleAnnotate)
	}
}

// handleWordLevel handles the word_level tool invocation.
func (s *Server) handleWordLevel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WordLevelInput,
) (*mcp.CallToolResult, WordLevelOutput, error) {
	output := WordLevelOutput{Word: input.Word, POS: input.POS}

	var (
		level float64
		ok    bool
		err   error
	)
	if input.POS != "" {
		level, ok, err = s.ports.Level.LevelFor(ctx, input.Word, input.POS)
	} else {
		level, ok, err = s.ports.Level.AverageLevelFor(ctx, input.Word)
	}
	if err != nil {
		return nil, WordLevelOutput{}, err
	}
	if !ok {
		return nil, output, nil
	}

	band, err := domain.LevelFromFloat(level)
	if err != nil {
		return nil, WordLevelOutput{}, err
	}

	output.Found = true
	output.Level = level
	output.CEFR = band.String()
	return nil, output, nil
}

// handleWordProfile handles the word_profile tool invocation.
func (s *Server) handleWordProfile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WordProfileInput,
) (*mcp.CallToolResult, WordProfileOutput, error) {
	output := WordProfileOutput{Word: input.Word}

	byPOS, err := s.ports.Level.POSLevelMapFor(ctx, input.Word)
	if err != nil {
		return nil, WordProfileOutput{}, err
	}
	if len(byPOS) == 0 {
		return nil, output, nil
	}

	output.Found = true
	output.ByPOS = make(map[string]float64, len(byPOS))
	for pos, level := range byPOS {
		output.ByPOS[pos.String()] = level
	}

	average, ok, err := s.ports.Level.AverageLevelFor(ctx, input.Word)
	if err != nil {
		return nil, WordProfileOutput{}, err
	}
	if ok {
		band, err := domain.LevelFromFloat(average)
		if err != nil {
			return nil, WordProfileOutput{}, err
		}
		output.Average = average
		output.CEFR = band.String()
	}
	return nil, output, nil
}

// handleAnnotate handles the annotate tool invocation.
func (s *Server) handleAnnotate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnnotateInput,
) (*mcp.CallToolResult, AnnotateOutput, error) {
	annotations, err := s.ports.Annotator.Annotate(ctx, input.Tokens)
	if err != nil {
		return nil, AnnotateOutput{}, err
	}

	return nil, AnnotateOutput{
		Annotations: annotations,
		Count:       len(annotations),
	}, nil
}
