package mcp

import (
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Catalog answers search and browse queries.
	Catalog driving.CatalogService

	// History records queries. Optional.
	History driving.SearchHistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
