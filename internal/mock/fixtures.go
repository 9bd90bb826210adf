package mock

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fixtureFile is the on-disk layout of a fixture file.
// JSON files work too since YAML is a superset.
type fixtureFile struct {
	LoadView map[string]Response `yaml:"load_view"`
	Search   map[string]Response `yaml:"search"`
}

// LoadFile reads a fixture file into a Dataset
func LoadFile(path string) (*Dataset, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // fixture path supplied by the user
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", cleanPath, err)
	}

	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse fixtures %s: %w", cleanPath, err)
	}
	return ds, nil
}

// Parse decodes fixture YAML (or JSON) into a Dataset
func Parse(data []byte) (*Dataset, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.LoadView == nil && f.Search == nil {
		return nil, fmt.Errorf("no load_view or search fixtures defined")
	}
	return NewDataset(f.LoadView, f.Search), nil
}

// Marshal encodes a Dataset in the fixture file format
func Marshal(d *Dataset) ([]byte, error) {
	return yaml.Marshal(fixtureFile{
		LoadView: copyResponses(d.loadView),
		Search:   copyResponses(d.search),
	})
}
