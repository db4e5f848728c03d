package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllMatchedFields_PriorityOrder(t *testing.T) {
	assert.Equal(t, []MatchedField{
		MatchedTitle, MatchedDescription, MatchedCategory, MatchedSource, MatchedTopic,
	}, AllMatchedFields())
	assert.Len(t, AllMatchedFields(), SearchableFieldCount)
}

func TestMatchedField_Value(t *testing.T) {
	d := Dataset{
		Name:                "n",
		Description:         "d",
		CommunityActionArea: "a",
		Source:              "s",
		DataTopic:           "t",
	}

	assert.Equal(t, "n", MatchedTitle.Value(d))
	assert.Equal(t, "d", MatchedDescription.Value(d))
	assert.Equal(t, "a", MatchedCategory.Value(d))
	assert.Equal(t, "s", MatchedSource.Value(d))
	assert.Equal(t, "t", MatchedTopic.Value(d))
	assert.Empty(t, MatchedField("other").Value(d))
}

func TestSearchResult_HasRelevance(t *testing.T) {
	assert.False(t, SearchResult{}.HasRelevance())
	assert.True(t, SearchResult{MatchedFields: []MatchedField{MatchedTitle}, RelevanceScore: 0.2}.HasRelevance())
}
