package lint

import (
	"reflect"
	"slices"

	"projector/internal/analyze"
)

// Schema describes which properties a type exposes to path resolution.
type Schema interface {
	// Name is used in diagnostics.
	Name() string
	// Property returns the schema of the named property.
	Property(name string) (Schema, bool)
	// Properties lists the known property names.
	Properties() []string
	// Open reports that properties are only known at runtime (maps,
	// interfaces); paths below an open schema are not checked.
	Open() bool
}

type openSchema struct{ name string }

func (s openSchema) Name() string                  { return s.name }
func (s openSchema) Property(string) (Schema, bool) { return s, true }
func (s openSchema) Properties() []string          { return nil }
func (s openSchema) Open() bool                    { return true }

// --- reflect.Type ---

type reflectSchema struct {
	t reflect.Type
}

// ReflectSchema describes t the way projection resolves it at runtime:
// exported fields (promoted ones included) and getter methods.
func ReflectSchema(t reflect.Type) Schema {
	return reflectSchema{t: t}
}

func (s reflectSchema) base() reflect.Type {
	t := s.t
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

func (s reflectSchema) Name() string {
	return s.base().String()
}

func (s reflectSchema) Open() bool {
	switch s.base().Kind() {
	case reflect.Map, reflect.Interface:
		return true
	default:
		return false
	}
}

func (s reflectSchema) Property(name string) (Schema, bool) {
	t := s.base()
	if s.Open() {
		return openSchema{name: t.String()}, true
	}

	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(name); ok && f.IsExported() {
			return reflectSchema{t: f.Type}, true
		}
	}

	if m, ok := reflect.PointerTo(t).MethodByName(name); ok && isGetter(m.Type, 1) {
		return reflectSchema{t: m.Type.Out(0)}, true
	}

	return nil, false
}

func (s reflectSchema) Properties() []string {
	var out []string

	t := s.base()
	if t.Kind() == reflect.Struct {
		for _, f := range reflect.VisibleFields(t) {
			if f.IsExported() && !f.Anonymous {
				out = append(out, f.Name)
			}
		}
	}

	pt := reflect.PointerTo(t)
	for i := range pt.NumMethod() {
		if m := pt.Method(i); isGetter(m.Type, 1) {
			out = append(out, m.Name)
		}
	}

	return out
}

// isGetter checks a method type; recv is 1 for method expressions.
func isGetter(mt reflect.Type, recv int) bool {
	return mt.NumIn() == recv && mt.NumOut() == 1
}

// --- analyze.TypeInfo ---

type typeSchema struct {
	info *analyze.TypeInfo
}

// TypeSchema describes a statically analyzed type. Getter results are not
// analyzed, so paths continuing below a getter are not checked.
func TypeSchema(info *analyze.TypeInfo) Schema {
	return typeSchema{info: info}
}

func (s typeSchema) Name() string {
	base := s.info.Deref()
	switch {
	case base == nil:
		return analyze.TypeKindUnknown.String()
	case base.IsNamed():
		return base.ID.String()
	default:
		return base.Kind.String()
	}
}

func (s typeSchema) Open() bool {
	base := s.info.Deref()
	if base == nil {
		return true
	}

	switch base.Kind {
	case analyze.TypeKindMap, analyze.TypeKindInterface, analyze.TypeKindUnknown:
		return true
	default:
		return false
	}
}

func (s typeSchema) Property(name string) (Schema, bool) {
	if s.Open() {
		return openSchema{name: s.Name()}, true
	}

	base := s.info.Deref()
	if f := findField(base, name, map[*analyze.TypeInfo]bool{}); f != nil {
		return typeSchema{info: f.Type}, true
	}

	if slices.Contains(base.Getters, name) {
		return openSchema{name: name + "()"}, true
	}

	return nil, false
}

func (s typeSchema) Properties() []string {
	base := s.info.Deref()
	if base == nil {
		return nil
	}

	out := fieldNames(base, map[*analyze.TypeInfo]bool{})

	return append(out, base.Getters...)
}

// findField looks name up among the fields of info, then among fields
// promoted from embedded structs.
func findField(info *analyze.TypeInfo, name string, seen map[*analyze.TypeInfo]bool) *analyze.FieldInfo {
	if !hasFields(info) || seen[info] {
		return nil
	}

	seen[info] = true

	for i := range info.Fields {
		if f := &info.Fields[i]; f.Name == name && !f.Embedded {
			return f
		}
	}

	for i := range info.Fields {
		if f := &info.Fields[i]; f.Embedded {
			if f.Name == name {
				return f
			}

			if found := findField(f.Type.Deref(), name, seen); found != nil {
				return found
			}
		}
	}

	return nil
}

func fieldNames(info *analyze.TypeInfo, seen map[*analyze.TypeInfo]bool) []string {
	if !hasFields(info) || seen[info] {
		return nil
	}

	seen[info] = true

	var out []string
	for _, f := range info.Fields {
		if f.Embedded {
			out = append(out, fieldNames(f.Type.Deref(), seen)...)
			continue
		}

		out = append(out, f.Name)
	}

	return out
}

// hasFields reports struct kinds, including structs of packages outside the
// analyzed set.
func hasFields(info *analyze.TypeInfo) bool {
	return info != nil && (info.Kind == analyze.TypeKindStruct || info.Kind == analyze.TypeKindExternal)
}
