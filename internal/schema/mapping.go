package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MappingVersion is the column-mapping format understood by this build.
const MappingVersion = 1

// Mapping resolves canonical field names to the source headers they
// may be read from. The three historical import scripts disagreed on
// column naming; the mapping makes the accepted headers explicit and
// versioned instead of reproducing that drift.
type Mapping struct {
	Version int                 `yaml:"version"`
	Columns map[string][]string `yaml:"columns"`
}

// DefaultMapping returns the built-in mapping derived from
// CustomerFields.
func DefaultMapping() Mapping {
	cols := make(map[string][]string, len(CustomerFields))
	for _, f := range CustomerFields {
		cols[f.Name] = append([]string(nil), f.Aliases...)
	}
	return Mapping{Version: MappingVersion, Columns: cols}
}

// LoadMapping reads a YAML mapping file. Unknown field names and
// unsupported versions are rejected so a stale mapping fails loudly
// instead of silently dropping columns. Fields absent from the file
// keep their built-in headers.
func LoadMapping(path string) (Mapping, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Mapping{}, fmt.Errorf("read column mapping %s: %w", path, err)
	}

	var m Mapping
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Mapping{}, fmt.Errorf("decode column mapping %s: %w", path, err)
	}
	if m.Version != MappingVersion {
		return Mapping{}, fmt.Errorf("column mapping %s: unsupported version %d (want %d)", path, m.Version, MappingVersion)
	}
	for name, headers := range m.Columns {
		if _, ok := FieldByName(name); !ok {
			return Mapping{}, fmt.Errorf("column mapping %s: unknown field %q", path, name)
		}
		if len(headers) == 0 {
			return Mapping{}, fmt.Errorf("column mapping %s: field %q has no source headers", path, name)
		}
	}

	def := DefaultMapping()
	if m.Columns == nil {
		m.Columns = map[string][]string{}
	}
	for name, headers := range def.Columns {
		if _, ok := m.Columns[name]; !ok {
			m.Columns[name] = headers
		}
	}
	return m, nil
}

// Headers returns the accepted source headers for a canonical field,
// lowercased to match decoded row keys.
func (m Mapping) Headers(field string) []string {
	headers := m.Columns[field]
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = strings.ToLower(h)
	}
	return out
}
