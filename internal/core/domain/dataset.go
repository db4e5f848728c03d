package domain

import (
	"strings"
	"time"
)

// Dataset attribute names as they appear in catalog files.
const (
	AttrID                  = "id"
	AttrName                = "name"
	AttrDescription         = "description"
	AttrSource              = "source"
	AttrType                = "type"
	AttrCommunityActionArea = "communityActionArea"
	AttrDataTopic           = "dataTopic"
	AttrDataFormat          = "dataFormat"
	AttrDateCreated         = "dateCreated"
	AttrDateUpdated         = "dateUpdated"
	AttrPageURL             = "pageUrl"
)

// Dataset is a single catalog record. Datasets are supplied externally
// and never modified once loaded. Optional fields are empty when absent.
type Dataset struct {
	// ID is the unique identifier for the dataset.
	ID string

	// Name is the human-readable title.
	Name string

	// Description is free text describing the contents.
	Description string

	// Source names the publishing organisation or survey.
	Source string

	// Type is the category label, e.g. "Public Health".
	Type string

	// CommunityActionArea is the thematic grouping used for colour-coding.
	CommunityActionArea string

	// DataTopic is an optional free-text topic label.
	DataTopic string

	// DataFormat is the distribution format, e.g. "CSV Collection".
	DataFormat string

	// DateCreated and DateUpdated are locale-formatted date strings.
	DateCreated string
	DateUpdated string

	// PageURL is an optional external link.
	PageURL string
}

// Attribute returns the value of the named raw attribute and whether it is
// present. Unknown attribute names and empty values report false.
func (d Dataset) Attribute(field string) (string, bool) {
	var v string
	switch field {
	case AttrID:
		v = d.ID
	case AttrName:
		v = d.Name
	case AttrDescription:
		v = d.Description
	case AttrSource:
		v = d.Source
	case AttrType:
		v = d.Type
	case AttrCommunityActionArea:
		v = d.CommunityActionArea
	case AttrDataTopic:
		v = d.DataTopic
	case AttrDataFormat:
		v = d.DataFormat
	case AttrDateCreated:
		v = d.DateCreated
	case AttrDateUpdated:
		v = d.DateUpdated
	case AttrPageURL:
		v = d.PageURL
	default:
		return "", false
	}
	return v, v != ""
}

// UpdatedAt parses DateUpdated. Missing or unparseable dates yield the
// Unix epoch so they order before every real date.
func (d Dataset) UpdatedAt() time.Time {
	if t, ok := ParseDate(d.DateUpdated); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// CreatedAt parses DateCreated with the same fallback as UpdatedAt.
func (d Dataset) CreatedAt() time.Time {
	if t, ok := ParseDate(d.DateCreated); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// dateLayouts lists the formats accepted by ParseDate, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2006",
}

// ParseDate parses a date string in any of the common catalog layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
