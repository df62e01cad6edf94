package profile

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// File is the root of a profiles YAML file.
type File struct {
	// Version is the schema version (currently "1").
	Version string `yaml:"version"`
	// Profiles are the named path sets, in file order.
	Profiles []Profile `yaml:"profiles"`
}

// Profile is a named property path list.
type Profile struct {
	// Name identifies the profile, e.g. "customer.card".
	Name string `yaml:"name"`
	// Description is free text shown by the CLI.
	Description string `yaml:"description,omitempty"`
	// Extends names profiles whose paths come first.
	Extends StringOrArray `yaml:"extends,omitempty"`
	// Paths are dotted property paths.
	Paths StringOrArray `yaml:"paths"`
}

// StringOrArray is a list of strings that may be written as a single string.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// Get returns the profile with the given name.
func (f *File) Get(name string) (*Profile, bool) {
	for i := range f.Profiles {
		if f.Profiles[i].Name == name {
			return &f.Profiles[i], true
		}
	}

	return nil, false
}

// Names returns profile names in file order.
func (f *File) Names() []string {
	out := make([]string, 0, len(f.Profiles))
	for _, p := range f.Profiles {
		out = append(out, p.Name)
	}

	return out
}
