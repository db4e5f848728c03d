package services

import "github.com/custodia-labs/hdcat/internal/core/domain"

// sampleDatasets returns 13 datasets across the six community action areas.
// Only hdc-009, hdc-010 and hdc-011 mention "housing".
func sampleDatasets() []domain.Dataset {
	return []domain.Dataset{
		{
			ID:                  "hdc-001",
			Name:                "Early Childhood Education Enrollment",
			Description:         "Enrollment in state preschool and transitional kindergarten by county.",
			Source:              "California Department of Education",
			Type:                "Educational Records",
			CommunityActionArea: domain.AreaHealthyChildDevelopment,
			DataTopic:           "Early Learning",
			DataFormat:          "CSV Collection",
			DateCreated:         "2021-08-01",
			DateUpdated:         "March 15, 2024",
		},
		{
			ID:                  "hdc-002",
			Name:                "Child Health Insurance Coverage",
			Description:         "Share of children under 19 with health insurance.",
			Source:              "ACS and Census Data",
			Type:                "Public Health",
			CommunityActionArea: domain.AreaHealthyChildDevelopment,
			DataTopic:           "Health Insurance",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2024-01-10",
		},
		{
			ID:                  "hdc-003",
			Name:                "Youth Voter Registration",
			Description:         "Registered voters aged 18 to 24 by county.",
			Source:              "CA Open Data",
			Type:                "Community",
			CommunityActionArea: domain.AreaYouthCivicEngagement,
			DataTopic:           "Civic Participation",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2023-11-02",
		},
		{
			ID:                  "hdc-004",
			Name:                "After-School Program Participation",
			Description:         "Students enrolled in expanded learning programs.",
			Source:              "California Department of Education",
			Type:                "Educational Records",
			CommunityActionArea: domain.AreaYouthCivicEngagement,
			DataTopic:           "Youth Programs",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2023-09-18",
		},
		{
			ID:                  "hdc-005",
			Name:                "Pollution Burden Scores",
			Description:         "Census tract scores combining exposure and environmental effect indicators.",
			Source:              "CalEnviroScreen 2.0",
			Type:                "Public Health",
			CommunityActionArea: domain.AreaProtectiveEnvironments,
			DataTopic:           "Environmental Health",
			DataFormat:          "KML Collection",
			DateUpdated:         "2022-06-30",
		},
		{
			ID:                  "hdc-006",
			Name:                "Violent Crime Rates",
			Description:         "Reported violent crimes per 1,000 residents.",
			Source:              "CA Open Data",
			Type:                "Community",
			CommunityActionArea: domain.AreaProtectiveEnvironments,
			DataTopic:           "Public Safety",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2024-02-01",
		},
		{
			ID:                  "hdc-007",
			Name:                "CalFresh Enrollment",
			Description:         "Monthly participation in the CalFresh food assistance program.",
			Source:              "California Department of Social Services",
			Type:                "Public Health",
			CommunityActionArea: domain.AreaEconomicSupports,
			DataTopic:           "Food Security",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2024-04-05",
		},
		{
			ID:                  "hdc-008",
			Name:                "Unemployment Rate by County",
			Description:         "Monthly labor force and unemployment estimates.",
			Source:              "Local Area Unemployment Statistics CA",
			Type:                "Community",
			CommunityActionArea: domain.AreaEconomicSupports,
			DataTopic:           "Employment",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2024-03-22",
		},
		{
			ID:                  "hdc-009",
			Name:                "Housing Cost Burden",
			Description:         "Households spending more than 30 percent of income on rent or mortgage.",
			Source:              "PolicyMap",
			Type:                "Community",
			CommunityActionArea: domain.AreaSafeStableHousing,
			DataTopic:           "Affordability",
			DataFormat:          "KML Collection",
			DateUpdated:         "01/28/2024",
		},
		{
			ID:                  "hdc-010",
			Name:                "Eviction Filings",
			Description:         "Court eviction filings per 100 renter households.",
			Source:              "CA Open Data",
			Type:                "Community",
			CommunityActionArea: domain.AreaSafeStableHousing,
			DataTopic:           "Tenant Stability",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2023-12-12",
		},
		{
			ID:                  "hdc-011",
			Name:                "Housing Characteristics",
			Description:         "Survey estimates of unit age, size and occupancy.",
			Source:              "U.S. Household Pulse Survey",
			Type:                "Community",
			CommunityActionArea: domain.AreaDemographicData,
			DataTopic:           "Housing Stock",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2023-08-30",
		},
		{
			ID:                  "hdc-012",
			Name:                "Census Demographics",
			Description:         "Population by age, race and ethnicity.",
			Source:              "ACS and Census Data",
			Type:                "Community",
			CommunityActionArea: domain.AreaDemographicData,
			DataTopic:           "Population",
			DataFormat:          "CSV Collection",
			DateUpdated:         "2023-10-05",
		},
		{
			ID:                  "hdc-013",
			Name:                "Child Poverty Rate",
			Description:         "Children living below the federal poverty line.",
			Source:              "2023 Kids Count Data Book",
			Type:                "Public Health",
			CommunityActionArea: domain.AreaEconomicSupports,
			DataTopic:           "Poverty",
			DataFormat:          "CSV Collection",
		},
	}
}

func ids(datasets []domain.Dataset) []string {
	out := make([]string, len(datasets))
	for i, d := range datasets {
		out[i] = d.ID
	}
	return out
}

func resultIDs(results []domain.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Dataset.ID
	}
	return out
}
