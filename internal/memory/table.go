package memory

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed sample_customizations.toml
var sampleTable string

type tableFile struct {
	Dates map[string]Customization `toml:"dates" yaml:"dates"`
}

// SampleTable returns an example customization table in TOML form.
func SampleTable() string {
	return sampleTable
}

// LoadTable reads a customization table from path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as TOML. An empty path or a
// missing file yields an empty table.
func LoadTable(path string) (Table, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Table{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, nil
		}
		return nil, fmt.Errorf("read customizations: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAMLTable(data)
	default:
		return ParseTOMLTable(data)
	}
}

// ParseTOMLTable decodes a [dates."YYYY-MM-DD"] table.
func ParseTOMLTable(data []byte) (Table, error) {
	var file tableFile
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse customizations: %w", err)
	}
	return file.table()
}

// ParseYAMLTable decodes a YAML document with a top-level dates mapping.
func ParseYAMLTable(data []byte) (Table, error) {
	var file tableFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse customizations: %w", err)
	}
	return file.table()
}

func (f tableFile) table() (Table, error) {
	table := make(Table, len(f.Dates))
	for key, custom := range f.Dates {
		trimmed := strings.TrimSpace(key)
		if parsed, _, ok := ExtractDateKey(trimmed); !ok || parsed != trimmed {
			return nil, fmt.Errorf("customizations: %q is not a YYYY-MM-DD date", key)
		}
		table[trimmed] = Customization{
			Title:       strings.TrimSpace(custom.Title),
			Description: strings.TrimSpace(custom.Description),
			Emblem:      strings.TrimSpace(custom.Emblem),
		}
	}
	return table, nil
}
