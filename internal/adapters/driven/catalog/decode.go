package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

// Format identifies the encoding of a catalog document.
type Format string

// Supported catalog formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DetectFormat picks the format from a path or URL extension.
func DetectFormat(location string) (Format, error) {
	// Drop any query string so URLs like ".../catalog.json?raw=1" still resolve.
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, location)
	}
}

// flexString accepts a JSON string or number. Catalog exports sometimes
// carry numeric ids.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

// datasetRecord is the on-disk shape of a dataset.
type datasetRecord struct {
	ID                  flexString `json:"id"`
	Name                flexString `json:"name"`
	Description         flexString `json:"description"`
	Source              flexString `json:"source"`
	Type                flexString `json:"type"`
	CommunityActionArea flexString `json:"communityActionArea"`
	DataTopic           flexString `json:"dataTopic"`
	DataFormat          flexString `json:"dataFormat"`
	DateCreated         flexString `json:"dateCreated"`
	DateUpdated         flexString `json:"dateUpdated"`
	PageURL             flexString `json:"pageUrl"`
}

func (r datasetRecord) toDomain() domain.Dataset {
	return domain.Dataset{
		ID:                  strings.TrimSpace(string(r.ID)),
		Name:                string(r.Name),
		Description:         string(r.Description),
		Source:              string(r.Source),
		Type:                string(r.Type),
		CommunityActionArea: string(r.CommunityActionArea),
		DataTopic:           string(r.DataTopic),
		DataFormat:          string(r.DataFormat),
		DateCreated:         string(r.DateCreated),
		DateUpdated:         string(r.DateUpdated),
		PageURL:             string(r.PageURL),
	}
}

type catalogDocument struct {
	Datasets []datasetRecord `json:"datasets"`
}

// Decode parses a catalog document. The document is either a bare list of
// datasets or an object with a "datasets" list.
func Decode(data []byte, format Format) ([]domain.Dataset, error) {
	raw, err := normalise(data, format)
	if err != nil {
		return nil, err
	}

	var records []datasetRecord
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return nil, fmt.Errorf("%w: empty catalog document", domain.ErrInvalidInput)
	case trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode dataset list: %w", err)
		}
	case trimmed[0] == '{':
		var doc catalogDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode catalog document: %w", err)
		}
		records = doc.Datasets
	default:
		return nil, fmt.Errorf("%w: catalog must be a list or an object with \"datasets\"", domain.ErrInvalidInput)
	}

	datasets := make([]domain.Dataset, 0, len(records))
	for i, r := range records {
		d := r.toDomain()
		if d.ID == "" {
			return nil, fmt.Errorf("%w: dataset at index %d has no id", domain.ErrInvalidInput, i)
		}
		datasets = append(datasets, d)
	}
	return datasets, nil
}

// normalise converts YAML and TOML documents to JSON so that a single set of
// record tags covers every format.
func normalise(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse yaml catalog: %w", err)
		}
		return marshalGeneric(v)
	case FormatTOML:
		var v map[string]any
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse toml catalog: %w", err)
		}
		return marshalGeneric(v)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

func marshalGeneric(v any) ([]byte, error) {
	out, err := json.Marshal(stringKeys(v))
	if err != nil {
		return nil, fmt.Errorf("convert catalog: %w", err)
	}
	return out, nil
}

// stringKeys rewrites map[any]any values, which encoding/json cannot encode.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[keyString(k)] = stringKeys(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}

func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}
