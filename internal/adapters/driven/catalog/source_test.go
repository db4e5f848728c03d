package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSource_Validation(t *testing.T) {
	_, err := NewSource("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewSource("catalog.xml")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestSource_LoadFile(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), "catalog.json", `[{"id": "a", "name": "Alpha"}]`)

	src, err := NewSource(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Location())
	assert.False(t, src.IsRemote())

	datasets, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, datasets, 1)
	assert.Equal(t, "Alpha", datasets[0].Name)
}

func TestSource_LoadMissingFile(t *testing.T) {
	src, err := NewSource(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestSource_LoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/catalog.yaml", r.URL.Path)
		_, _ = w.Write([]byte("- id: remote\n  name: Remote Dataset\n"))
	}))
	defer server.Close()

	src, err := NewSource(server.URL+"/catalog.yaml", WithHTTPClient(server.Client()))
	require.NoError(t, err)
	assert.True(t, src.IsRemote())

	datasets, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, datasets, 1)
	assert.Equal(t, "remote", datasets[0].ID)
}

func TestSource_LoadURLBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	src, err := NewSource(server.URL+"/catalog.json", WithHTTPClient(server.Client()))
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Contains(t, err.Error(), "404")
}

func TestOpen(t *testing.T) {
	src, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, SampleLocation, src.Location())

	src, err = Open("catalog.toml")
	require.NoError(t, err)
	assert.Equal(t, "catalog.toml", src.Location())
}

func TestSample_Load(t *testing.T) {
	datasets, err := NewSample().Load(context.Background())
	require.NoError(t, err)
	require.Len(t, datasets, 13)

	areas := make(map[string]int)
	seen := make(map[string]bool)
	for _, d := range datasets {
		assert.NotEmpty(t, d.Name, d.ID)
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
		areas[d.CommunityActionArea]++
	}
	assert.Len(t, areas, 6)
	assert.Equal(t, "hdc-001", datasets[0].ID)
	assert.Empty(t, datasets[12].DateUpdated)
}
