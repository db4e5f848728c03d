package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDatasetID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid dataset URI",
			uri:      "hdcat://datasets/hdc-012",
			expected: "hdc-012",
		},
		{
			name:     "invalid prefix",
			uri:      "file://datasets/hdc-012",
			expected: "",
		},
		{
			name:     "collection URI",
			uri:      "hdcat://datasets",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDatasetID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDatasetsResource(t *testing.T) {
	server, _ := newTestServer(t)

	result, err := server.handleDatasetsResource(context.Background(), makeReadResourceRequest("hdcat://datasets"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var datasets []DatasetOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &datasets))
	require.Len(t, datasets, 4)
	assert.Equal(t, "hdc-009", datasets[0].ID)
}

func TestServer_handleDatasetResource(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	t.Run("returns dataset", func(t *testing.T) {
		result, err := server.handleDatasetResource(ctx, makeReadResourceRequest("hdcat://datasets/hdc-007"))
		require.NoError(t, err)

		var d DatasetOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &d))
		assert.Equal(t, "CalFresh Enrollment", d.Name)
		assert.Equal(t, "Food Security", d.DataTopic)
	})

	t.Run("unknown dataset", func(t *testing.T) {
		_, err := server.handleDatasetResource(ctx, makeReadResourceRequest("hdcat://datasets/nope"))
		assert.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		_, err := server.handleDatasetResource(ctx, makeReadResourceRequest("other://datasets/hdc-007"))
		assert.Error(t, err)
	})
}

func TestServer_handleFacetsResource(t *testing.T) {
	server, _ := newTestServer(t)

	result, err := server.handleFacetsResource(context.Background(), makeReadResourceRequest("hdcat://facets"))

	require.NoError(t, err)
	var facets []FacetOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &facets))
	assert.Len(t, facets, 5)
}
