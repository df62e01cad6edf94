package analyze

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "projector/store"
	Name    string // e.g., "Customer"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice or array of another type
	TypeKindMap                // map with any key type
	TypeKindInterface          // interface, properties unknown until runtime
	TypeKindAlias              // named type wrapping a non-struct type
	TypeKindExternal           // named type from a package that was not loaded
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return "unknown"
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For aliases, the underlying type
	ElemType   *TypeInfo   // For pointers, slices and maps, the element type
	Fields     []FieldInfo // For structs (external too), exported and embedded fields
	Getters    []string    // Exported methods without arguments and with one result
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Deref follows pointers and aliases down to the type that holds properties.
func (t *TypeInfo) Deref() *TypeInfo {
	cur := t
	for cur != nil {
		switch {
		case cur.Kind == TypeKindPointer && cur.ElemType != nil:
			cur = cur.ElemType
		case cur.Kind == TypeKindAlias && cur.Underlying != nil:
			cur = cur.Underlying
		default:
			return cur
		}
	}

	return nil
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string    // Go field name
	Type     *TypeInfo // Field type
	Embedded bool      // Whether the field is embedded (anonymous)
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
