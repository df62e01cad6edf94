package projection

import (
	"reflect"
	"slices"

	"projector/internal/match"
)

// PropertyReader is implemented by values that expose their properties by
// name without reflection.
type PropertyReader interface {
	// Property returns the named property and whether it exists.
	Property(name string) (any, bool)
}

// Record is a structural record: a string-keyed bag of properties.
type Record map[string]any

// Property implements PropertyReader.
func (r Record) Property(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// resolver walks property paths. normalized enables a second lookup pass
// comparing match.NormalizeIdent forms when the exact name is missing.
type resolver struct {
	normalized bool
}

// resolve walks the path segment by segment. found is false when a property
// is missing or an intermediate value is nil.
func (r resolver) resolve(obj any, p Path) (value any, found bool) {
	current := obj
	for _, seg := range p.Segments {
		if isNil(current) {
			return nil, false
		}

		next, ok := r.property(current, seg)
		if !ok {
			return nil, false
		}

		current = next
	}

	if isNil(current) {
		return nil, true
	}

	return current, true
}

// property looks up one named property on v.
func (r resolver) property(v any, name string) (any, bool) {
	if name == "" {
		return nil, false
	}

	switch obj := v.(type) {
	case Record:
		return r.mapKey(obj, name)
	case map[string]any:
		return r.mapKey(obj, name)
	case PropertyReader:
		return obj.Property(name)
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		key := reflect.ValueOf(name).Convert(rv.Type().Key())
		if val := rv.MapIndex(key); val.IsValid() {
			return val.Interface(), true
		}

		if r.normalized {
			return r.normalizedMapKey(rv, name)
		}

	case reflect.Struct:
		if val, ok := structProperty(v, rv, name); ok {
			return val, true
		}

		if r.normalized {
			if actual, ok := r.normalizedStructName(v, rv, name); ok {
				return structProperty(v, rv, actual)
			}
		}
	}

	return nil, false
}

func (r resolver) mapKey(m map[string]any, name string) (any, bool) {
	if val, ok := m[name]; ok {
		return val, true
	}

	if r.normalized {
		return r.normalizedMapKey(reflect.ValueOf(m), name)
	}

	return nil, false
}

// structProperty returns an exported field (promoted fields included) or the
// result of an exported zero-argument getter method.
func structProperty(orig any, rv reflect.Value, name string) (any, bool) {
	if sf, ok := rv.Type().FieldByName(name); ok && sf.IsExported() {
		field, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			// nil embedded pointer on the way to a promoted field
			return nil, true
		}

		if !field.CanInterface() {
			return nil, false
		}

		return field.Interface(), true
	}

	if m, ok := getter(orig, rv, name); ok {
		return m.Call(nil)[0].Interface(), true
	}

	return nil, false
}

// getter finds a method usable as a property accessor: exported, no
// arguments, exactly one result. Pointer receivers are tried first.
func getter(orig any, rv reflect.Value, name string) (reflect.Value, bool) {
	candidates := []reflect.Value{reflect.ValueOf(orig)}
	if rv.CanAddr() {
		candidates = append(candidates, rv.Addr())
	}

	candidates = append(candidates, rv)

	for _, c := range candidates {
		if !c.IsValid() || (c.Kind() == reflect.Pointer && c.IsNil()) {
			continue
		}

		m := c.MethodByName(name)
		if !m.IsValid() {
			continue
		}

		if m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
			return m, true
		}
	}

	return reflect.Value{}, false
}

// normalizedMapKey matches name against map keys by normalized form.
// Keys are sorted first so the first match is deterministic.
func (r resolver) normalizedMapKey(rv reflect.Value, name string) (any, bool) {
	want := match.NormalizeIdent(name)

	keys := rv.MapKeys()
	names := make([]string, 0, len(keys))
	byName := make(map[string]reflect.Value, len(keys))

	for _, k := range keys {
		s := k.String()
		names = append(names, s)
		byName[s] = k
	}

	slices.Sort(names)

	for _, s := range names {
		if match.NormalizeIdent(s) == want {
			return rv.MapIndex(byName[s]).Interface(), true
		}
	}

	return nil, false
}

// normalizedStructName returns the declared field or getter name whose
// normalized form equals the normalized form of name.
func (r resolver) normalizedStructName(orig any, rv reflect.Value, name string) (string, bool) {
	want := match.NormalizeIdent(name)

	for _, f := range reflect.VisibleFields(rv.Type()) {
		if f.IsExported() && !f.Anonymous && match.NormalizeIdent(f.Name) == want {
			return f.Name, true
		}
	}

	t := reflect.TypeOf(orig)
	if rv.CanAddr() && t.Kind() != reflect.Pointer {
		t = reflect.PointerTo(t)
	}

	for i := range t.NumMethod() {
		m := t.Method(i)
		if match.NormalizeIdent(m.Name) == want {
			return m.Name, true
		}
	}

	return "", false
}

// indirect follows pointers and interfaces. It returns the zero Value when a
// nil is met on the way.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}

		rv = rv.Elem()
	}

	return rv
}

// isNil reports untyped nil as well as nil pointers, maps, slices,
// interfaces, channels and funcs.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
