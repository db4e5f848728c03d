package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingCatalogService,
		ErrMissingFilterState,
		ErrMissingViewState,
	}

	// Ensure all errors are unique
	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingCatalogService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingCatalogService.Error(), "catalog service")
}

func TestErrMissingFilterState_Message(t *testing.T) {
	assert.Contains(t, ErrMissingFilterState.Error(), "filter state")
}

func TestErrMissingViewState_Message(t *testing.T) {
	assert.Contains(t, ErrMissingViewState.Error(), "view state")
}
