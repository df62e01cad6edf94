package profile

import (
	"errors"
	"fmt"

	"projector/internal/diagnostic"
	"projector/internal/lint"
)

// Validate checks the whole file: duplicate or empty names, broken extends
// chains, and every flattened path set through lint.Paths.
func Validate(f *File) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	seen := make(map[string]bool, len(f.Profiles))
	for i, p := range f.Profiles {
		if p.Name == "" {
			d.AddError(diagnostic.CodeUnnamedProfile, fmt.Sprintf("profile #%d has no name", i+1), "", "")
			continue
		}

		if seen[p.Name] {
			d.AddError(diagnostic.CodeDuplicateProfile, "profile is defined more than once", p.Name, "")
			continue
		}

		seen[p.Name] = true
	}

	checked := make(map[string]bool, len(seen))
	for _, p := range f.Profiles {
		if p.Name == "" || checked[p.Name] {
			continue
		}

		checked[p.Name] = true

		paths, err := f.Paths(p.Name)
		switch {
		case errors.Is(err, ErrProfileCycle):
			d.AddError(diagnostic.CodeProfileCycle, err.Error(), p.Name, "")
			continue
		case err != nil:
			d.AddError(diagnostic.CodeUnknownProfile, err.Error(), p.Name, "")
			continue
		}

		d.Merge(lint.Paths(p.Name, paths))
	}

	return d
}
