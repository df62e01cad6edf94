// Package analyze loads Go packages and extracts the property shape of their
// exported types.
//
// It uses golang.org/x/tools/go/packages with go/types so that property
// paths can be checked against struct definitions without running code.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind (struct/basic/alias/pointer/slice/map/external), fields and getters
//   - FieldInfo: field name, type, tag and embedding
package analyze
