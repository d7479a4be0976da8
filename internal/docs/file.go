package docs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode parses a YAML or JSON document file.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return &f, nil
}

// ReadFile reads and decodes the document file at path.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Encode marshals f as YAML.
func Encode(f *File) ([]byte, error) {
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal document: %w", err)
	}
	return out, nil
}
