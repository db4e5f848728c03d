package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for hdcat resources.
	uriScheme = "hdcat://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "datasets",
		Name:        "datasets",
		Description: "Every dataset in the catalog, in storage order",
		MIMEType:    mimeJSON,
	}, s.handleDatasetsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "datasets/{datasetId}",
		Name:        "dataset",
		Description: "A single dataset record",
		MIMEType:    mimeJSON,
	}, s.handleDatasetResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "facets",
		Name:        "facets",
		Description: "Facet categories with value counts across the catalog",
		MIMEType:    mimeJSON,
	}, s.handleFacetsResource)
}

// handleDatasetsResource returns every dataset.
func (s *Server) handleDatasetsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, toDatasetOutputs(s.ports.Catalog.Datasets()))
}

// handleDatasetResource returns one dataset.
func (s *Server) handleDatasetResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractDatasetID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	d, ok := s.ports.Catalog.DatasetByID(id)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, toDatasetOutput(d))
}

// handleFacetsResource returns facet counts over the whole catalog.
func (s *Server) handleFacetsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	catalog := s.ports.Catalog
	return jsonResource(req.Params.URI, toFacetOutputs(catalog.FacetCounts(catalog.Datasets())))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractDatasetID extracts the dataset ID from a URI like hdcat://datasets/{datasetId}.
func extractDatasetID(uri string) string {
	const prefix = uriScheme + "datasets/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
