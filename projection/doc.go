// Package projection reduces objects to the properties named by dotted
// paths.
//
// Given a source value and paths such as "ID" and "Address.City", Project
// builds a new tree holding only those properties and the nesting implied by
// the dots:
//
//	projection.Project(customer, []string{"ID", "Address.City", "Address.Zip"})
//	// {"ID": 7, "Address": {"City": "London", "Zip": "SW1Y"}}
//
// # Property lookup
//
// Each segment is looked up on the current value, in order:
//   - values implementing PropertyReader answer for themselves
//   - Record and other string-keyed maps by key
//   - structs (behind any pointers) by exported field, promoted fields
//     included, then by exported getter method (no arguments, one result)
//
// A missing property or a nil on the way makes the path absent. Absent
// values are still written, as nil leaves; keys are never dropped.
//
// # Path lists
//
// A nil path list passes the source through unchanged (ModePassThrough, the
// default) or yields an empty object (ModeReduce). An empty but non-nil list
// always yields an empty object.
//
// Paths sharing a prefix share one nested node. When one path ends at a key
// another continues through ("A" and "A.B"), the later write wins.
//
// Malformed paths ("A..B") resolve as absent unless WithStrictPaths is set,
// in which case they fail with ErrInvalidPath.
package projection
