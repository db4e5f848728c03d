package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driven"
)

// SampleLocation is reported as the location of the embedded catalog.
const SampleLocation = "embedded"

//go:embed sample_datasets.json
var sampleJSON []byte

// Ensure Sample implements the interface.
var _ driven.CatalogSource = (*Sample)(nil)

// Sample serves the catalog bundled with the binary.
type Sample struct{}

// NewSample creates the embedded catalog source.
func NewSample() *Sample {
	return &Sample{}
}

// Load decodes the embedded catalog.
func (s *Sample) Load(_ context.Context) ([]domain.Dataset, error) {
	datasets, err := Decode(sampleJSON, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	return datasets, nil
}

// Location returns SampleLocation.
func (s *Sample) Location() string {
	return SampleLocation
}
