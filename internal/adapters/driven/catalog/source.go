package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driven"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// maxRemoteBytes caps the size of a catalog fetched over HTTP.
const maxRemoteBytes = 32 << 20

// Source loads a catalog from a local file or an http(s) URL.
type Source struct {
	location string
	format   Format
	client   *http.Client
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithHTTPClient sets the client used for remote catalogs.
func WithHTTPClient(c *http.Client) SourceOption {
	return func(s *Source) {
		s.client = c
	}
}

// NewSource creates a source for location. The format comes from the
// file extension.
func NewSource(location string, opts ...SourceOption) (*Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: catalog location is empty", domain.ErrInvalidInput)
	}
	format, err := DetectFormat(location)
	if err != nil {
		return nil, err
	}
	s := &Source{
		location: location,
		format:   format,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Open returns the embedded sample when location is empty, otherwise a Source.
func Open(location string, opts ...SourceOption) (driven.CatalogSource, error) {
	if strings.TrimSpace(location) == "" {
		return NewSample(), nil
	}
	return NewSource(location, opts...)
}

// Location returns the path or URL.
func (s *Source) Location() string {
	return s.location
}

// IsRemote reports whether the catalog is fetched over HTTP.
func (s *Source) IsRemote() bool {
	return isURL(s.location)
}

// Load reads and decodes the catalog.
func (s *Source) Load(ctx context.Context) ([]domain.Dataset, error) {
	logger.Debug("Loading catalog from %s (%s)", s.location, s.format)
	data, err := s.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	datasets, err := Decode(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", s.location, err)
	}
	logger.Debug("Decoded %d datasets from %s", len(datasets), s.location)
	return datasets, nil
}

func (s *Source) read(ctx context.Context) ([]byte, error) {
	if !s.IsRemote() {
		data, err := os.ReadFile(s.location)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return data, nil
}

func isURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
