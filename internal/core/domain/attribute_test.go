package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaColor(t *testing.T) {
	assert.Equal(t, "#FF6B6B", AreaColor(AreaHealthyChildDevelopment))
	assert.Equal(t, "#6A0572", AreaColor(AreaDemographicData))
	assert.Equal(t, DefaultAreaColor, AreaColor("Unknown Area"))
}

func TestLookupAttribute_Known(t *testing.T) {
	info := LookupAttribute(AttrCommunityActionArea, AreaSafeStableHousing)

	assert.Equal(t, AreaSafeStableHousing, info.Name)
	assert.Equal(t, AttrCommunityActionArea, info.Field)
	assert.Equal(t, "#FFD166", info.Color)
	assert.NotEmpty(t, info.Description)

	source := LookupAttribute(AttrSource, "PolicyMap")
	assert.Empty(t, source.Color)
	assert.NotEmpty(t, source.LogoURL)
}

func TestLookupAttribute_Fallback(t *testing.T) {
	info := LookupAttribute(AttrDataTopic, "Food Security")

	assert.Equal(t, "Food Security", info.Name)
	assert.Equal(t, AttrDataTopic, info.Field)
	assert.Equal(t, "Information about Food Security", info.Description)
	assert.Equal(t, "Unknown", info.Source)
}
