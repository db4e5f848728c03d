// Package mcp provides an MCP (Model Context Protocol) server adapter for hdcat.
// It lets AI assistants search and browse the dataset catalog.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
