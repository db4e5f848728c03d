package domain

// Community action areas.
const (
	AreaHealthyChildDevelopment = "Promoting Healthy Child Development"
	AreaYouthCivicEngagement    = "Youth Development and Civic Engagement"
	AreaProtectiveEnvironments  = "Creating Protective Environments"
	AreaEconomicSupports        = "Strengthening Economic Supports for Children and Families"
	AreaSafeStableHousing       = "Access to Safe and Stable Housing"
	AreaDemographicData         = "Demographic Data"
)

// DefaultAreaColor is used for areas without an assigned colour.
const DefaultAreaColor = "#808080"

var areaColors = map[string]string{
	AreaHealthyChildDevelopment: "#FF6B6B",
	AreaYouthCivicEngagement:    "#4ECDC4",
	AreaProtectiveEnvironments:  "#45B7D1",
	AreaEconomicSupports:        "#98D85B",
	AreaSafeStableHousing:       "#FFD166",
	AreaDemographicData:         "#6A0572",
}

// AreaColor returns the hex colour of a community action area.
func AreaColor(area string) string {
	if c, ok := areaColors[area]; ok {
		return c
	}
	return DefaultAreaColor
}

// AttributeInfo describes a facet value for detail views.
type AttributeInfo struct {
	// Field is the dataset attribute the value belongs to.
	Field string

	// Name is the display name, usually the value itself.
	Name string

	// Description explains what datasets carrying this value contain.
	Description string

	// Source and SourceURL credit the classification or publisher.
	Source    string
	SourceURL string

	// Color is set for community action areas.
	Color string

	// LogoURL is set for publishing sources.
	LogoURL string
}

const (
	areaFramework      = "ACT Community Action Areas Framework"
	areaFrameworkURL   = "https://example.org/community-action-areas"
	classification     = "Healthcare Dataset Classification System"
	classificationURL  = "https://example.org/health-classifications"
	formatStandards    = "Data Format Standards"
	formatStandardsURL = "https://example.org/data-formats"
)

var attributeCatalog = map[string]AttributeInfo{
	AreaHealthyChildDevelopment: {
		Field:       AttrCommunityActionArea,
		Description: "Programs and datasets that support healthy child development from early childhood through adolescence, covering physical health, cognitive development and emotional well-being.",
		Source:      areaFramework,
		SourceURL:   areaFrameworkURL,
	},
	AreaYouthCivicEngagement: {
		Field:       AttrCommunityActionArea,
		Description: "Youth programs, civic participation and community involvement that build skills and opportunities for young people.",
		Source:      areaFramework,
		SourceURL:   areaFrameworkURL,
	},
	AreaProtectiveEnvironments: {
		Field:       AttrCommunityActionArea,
		Description: "Safety, environmental health and protective factors in communities, including crime rates and environmental quality.",
		Source:      areaFramework,
		SourceURL:   areaFrameworkURL,
	},
	AreaEconomicSupports: {
		Field:       AttrCommunityActionArea,
		Description: "Economic factors affecting families such as employment, income and financial stability.",
		Source:      areaFramework,
		SourceURL:   areaFrameworkURL,
	},
	AreaSafeStableHousing: {
		Field:       AttrCommunityActionArea,
		Description: "Housing affordability, quality and stability and how they affect community health.",
		Source:      areaFramework,
		SourceURL:   areaFrameworkURL,
	},
	AreaDemographicData: {
		Field:       AttrCommunityActionArea,
		Description: "Population characteristics including age, race and ethnicity that give context to community needs.",
		Source:      areaFramework,
		SourceURL:   areaFrameworkURL,
	},
	"PolicyMap": {
		Field:       AttrSource,
		Description: "Online data and mapping tool aggregating demographics, real estate, health and jobs data for US communities.",
		SourceURL:   "https://www.policymap.com/",
		LogoURL:     "https://example.org/logos/policymap.png",
	},
	"ACS and Census Data": {
		Field:       AttrSource,
		Description: "American Community Survey and US Census Bureau demographic, social, economic and housing data.",
		SourceURL:   "https://www.census.gov/programs-surveys/acs",
		LogoURL:     "https://example.org/logos/census.png",
	},
	"California Department of Social Services": {
		Field:       AttrSource,
		Description: "Enrollment, participation and outcome metrics for CalFresh, CalWORKs and other social support programs.",
		SourceURL:   "https://www.cdss.ca.gov/",
		LogoURL:     "https://example.org/logos/cdss.png",
	},
	"Public Health": {
		Field:       AttrType,
		Description: "Community health outcomes, healthcare access, environmental health factors and public health initiatives.",
		Source:      classification,
		SourceURL:   classificationURL,
	},
	"Community": {
		Field:       AttrType,
		Description: "Community characteristics, resources, quality of life metrics and social determinants of health.",
		Source:      classification,
		SourceURL:   classificationURL,
	},
	"Educational Records": {
		Field:       AttrType,
		Description: "School performance, enrollment, attendance and achievement metrics.",
		Source:      classification,
		SourceURL:   classificationURL,
	},
	"CSV Collection": {
		Field:       AttrDataFormat,
		Description: "Comma-separated values, importable into spreadsheet and database software.",
		Source:      formatStandards,
		SourceURL:   formatStandardsURL,
	},
	"KML Collection": {
		Field:       AttrDataFormat,
		Description: "Keyhole Markup Language geographic data for GIS and mapping tools.",
		Source:      formatStandards,
		SourceURL:   formatStandardsURL,
	},
}

// LookupAttribute returns the description of a facet value. Values without
// an entry get a generic description attributed to an unknown source.
func LookupAttribute(field, value string) AttributeInfo {
	info, ok := attributeCatalog[value]
	if !ok {
		return AttributeInfo{
			Field:       field,
			Name:        value,
			Description: "Information about " + value,
			Source:      unknownDescription,
			SourceURL:   "#",
		}
	}
	info.Name = value
	if field != "" {
		info.Field = field
	}
	if info.Field == AttrCommunityActionArea {
		info.Color = AreaColor(value)
	}
	return info
}
