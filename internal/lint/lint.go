package lint

import (
	"fmt"
	"strings"

	"projector/internal/diagnostic"
	"projector/internal/match"
	"projector/projection"
)

// maxSuggestions bounds the "did you mean" list of unknown properties.
const maxSuggestions = 3

// Paths checks a path set on its own: malformed paths, odd identifiers,
// duplicates and leaf/branch conflicts between paths sharing a prefix.
// scope is copied into every diagnostic.
func Paths(scope string, paths []string) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	parsed := projection.ParsePaths(paths)
	firstIndex := make(map[string]int, len(paths))

	for i, p := range parsed {
		raw := paths[i]

		if raw == "" {
			d.AddError(diagnostic.CodeEmptyPath, "path is empty", scope, raw)
			continue
		}

		if err := p.Validate(); err != nil {
			d.AddError(diagnostic.CodeEmptySegment, err.Error(), scope, raw)
			continue
		}

		for _, seg := range p.Segments {
			if !match.IsIdent(seg) {
				d.AddWarning(diagnostic.CodeInvalidIdentifier,
					fmt.Sprintf("segment %q is not an identifier and can only match map keys", seg),
					scope, raw)
			}
		}

		if j, dup := firstIndex[raw]; dup {
			d.AddInfo(diagnostic.CodeDuplicatePath,
				fmt.Sprintf("duplicate of path #%d; the later write wins", j+1),
				scope, raw)

			continue
		}

		firstIndex[raw] = i
	}

	conflicts(&d, scope, paths, firstIndex)

	return d
}

// conflicts reports every pair where one path ends at a key another path
// continues through. Assembly is last-write-wins, so the message names the
// surviving shape from the last occurrence of each path.
func conflicts(d *diagnostic.Diagnostics, scope string, paths []string, index map[string]int) {
	last := make(map[string]int, len(index))
	for i, raw := range paths {
		if _, ok := index[raw]; ok {
			last[raw] = i
		}
	}

	for i, raw := range paths {
		if j, ok := index[raw]; !ok || j != i {
			continue
		}

		segs := strings.Split(raw, ".")
		for n := 1; n < len(segs); n++ {
			prefix := strings.Join(segs[:n], ".")

			j, ok := last[prefix]
			if !ok {
				continue
			}

			var msg string
			if j < last[raw] {
				msg = fmt.Sprintf("%q is written as a value first and then replaced by a nested object", prefix)
			} else {
				msg = fmt.Sprintf("%q is written as a value last and replaces the nested object", prefix)
			}

			d.AddWarning(diagnostic.CodeLeafBranchConflict, msg, scope, raw)
		}
	}
}

// AgainstSchema runs Paths and then walks each well-formed path through
// schema, reporting properties the type does not have.
func AgainstSchema(schema Schema, paths []string) diagnostic.Diagnostics {
	scope := schema.Name()
	d := Paths(scope, paths)

	for _, raw := range paths {
		p := projection.ParsePath(raw)
		if !p.Valid() {
			continue
		}

		cur := schema
		for i, seg := range p.Segments {
			if cur.Open() {
				break
			}

			next, ok := cur.Property(seg)
			if !ok {
				d.Add(diagnostic.Diagnostic{
					Severity: diagnostic.SeverityError,
					Code:     diagnostic.CodeUnknownProperty,
					Message: fmt.Sprintf("%s has no property %q at %q",
						cur.Name(), seg, strings.Join(p.Segments[:i+1], ".")),
					Scope:       scope,
					Path:        raw,
					Suggestions: match.Suggest(seg, cur.Properties(), maxSuggestions),
				})

				break
			}

			cur = next
		}
	}

	return d
}
