package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hdcat/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search the
dataset catalog.

By default, the server communicates over stdio using JSON-RPC. Use --port
to start an HTTP server instead.

Tools:
  search_datasets     Keyword search with facet filters, sort and limit
  get_dataset         A single dataset by id
  featured_datasets   One dataset per community action area
  suggest_categories  Community action areas common to a query's matches
  list_facets         Facet values with dataset counts

Resources:
  hdcat://datasets, hdcat://datasets/{id}, hdcat://facets

Examples:
  # Stdio mode (default)
  hdcat mcp serve

  # HTTP mode
  hdcat mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Catalog: catalogService,
		History: historyService,
	})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
