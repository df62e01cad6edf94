// Package lint checks property path sets before they are used for
// projection.
//
// Structural checks (Paths) need nothing but the paths. Schema checks
// (AgainstSchema) also walk each path through a type, described either by
// reflection (ReflectSchema) or by static analysis (TypeSchema).
package lint
