package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is written to files that do not set one.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML profiles file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profiles YAML: %w", err)
	}

	applyDefaults(&f)

	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported profiles version %q", f.Version)
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Profiles {
		p := &f.Profiles[i]
		if p.Paths == nil {
			p.Paths = StringOrArray{}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profiles file %s: %w", path, err)
	}

	return nil
}
