package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownProfile = errors.New("unknown profile")
	ErrProfileCycle   = errors.New("profile extends itself")
)

// Paths returns the flattened path list of the named profile: the paths of
// every extended profile (depth-first, in declaration order) followed by the
// profile's own. A path already present is not repeated.
func (f *File) Paths(name string) ([]string, error) {
	out := []string{}
	if err := f.collect(name, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (f *File) collect(name string, stack []string, out *[]string) error {
	if slices.Contains(stack, name) {
		chain := append(append([]string{}, stack...), name)
		return fmt.Errorf("%w: %s", ErrProfileCycle, strings.Join(chain, " -> "))
	}

	p, ok := f.Get(name)
	if !ok {
		if len(stack) > 0 {
			return fmt.Errorf("%w %q (extended by %q)", ErrUnknownProfile, name, stack[len(stack)-1])
		}

		return fmt.Errorf("%w %q", ErrUnknownProfile, name)
	}

	stack = append(stack, name)
	for _, parent := range p.Extends {
		if err := f.collect(parent, stack, out); err != nil {
			return err
		}
	}

	for _, path := range p.Paths {
		if !slices.Contains(*out, path) {
			*out = append(*out, path)
		}
	}

	return nil
}
