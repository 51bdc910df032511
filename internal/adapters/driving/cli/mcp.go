package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexibase/cefrlex-cli/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long: `Runs the Model Context Protocol server, exposing word-level
resolution and document annotation as tools for AI assistants.

By default the server speaks stdio; with --http it listens on the given
address instead.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve over HTTP on this address (e.g. :8137)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Level:     levelService,
		Annotator: annotatorService,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	ctx := context.Background()
	if mcpHTTPAddr != "" {
		cmd.Printf("MCP server listening on %s\n", mcpHTTPAddr)
		return server.RunHTTP(ctx, mcpHTTPAddr)
	}
	return server.Run(ctx)
}
