package projection

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is returned in strict mode for paths with empty segments.
var ErrInvalidPath = errors.New("invalid property path")

// Path is a dotted property path split into its segments.
// "Address.City" -> ["Address", "City"].
type Path struct {
	raw      string
	Segments []string
}

// ParsePath splits a dotted path on ".".
//
// Empty segments are kept ("A..B" -> ["A", "", "B"]) so that malformed paths
// stay representable; use Valid or Validate to reject them.
func ParsePath(path string) Path {
	return Path{
		raw:      path,
		Segments: strings.Split(path, "."),
	}
}

// ParsePaths parses every dotted path in order.
func ParsePaths(paths []string) []Path {
	result := make([]Path, 0, len(paths))
	for _, p := range paths {
		result = append(result, ParsePath(p))
	}

	return result
}

// String returns the dotted form of the path.
func (p Path) String() string {
	if p.raw != "" {
		return p.raw
	}

	return strings.Join(p.Segments, ".")
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.Segments)
}

// Leaf returns the last segment.
func (p Path) Leaf() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[len(p.Segments)-1]
}

// Parents returns every segment except the last.
func (p Path) Parents() []string {
	if len(p.Segments) == 0 {
		return nil
	}

	return p.Segments[:len(p.Segments)-1]
}

// Valid reports whether the path has at least one segment and no empty ones.
func (p Path) Valid() bool {
	return p.Validate() == nil
}

// Validate returns an error wrapping ErrInvalidPath when a segment is empty.
func (p Path) Validate() error {
	if len(p.Segments) == 0 || p.String() == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	for i, seg := range p.Segments {
		if seg == "" {
			return fmt.Errorf("%w %q: empty segment at position %d", ErrInvalidPath, p.String(), i)
		}
	}

	return nil
}
