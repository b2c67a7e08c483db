package analyze

import (
	"go/token"
	"go/types"

	"mapping-generator/internal/descriptor"
)

// TypeKind represents how a Go type maps onto a descriptor.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindStruct           // struct type, becomes a complex descriptor
	TypeKindEnum             // named basic type with constants
	TypeKindAlias            // named basic type without constants, becomes its simple type
	TypeKindGeneric          // generic declaration, only instantiations are referenced
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindEnum:
		return "enum"
	case TypeKindAlias:
		return "alias"
	case TypeKindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// PackageSource is a descriptor.Source over one loaded Go package.
// Module and namespace are both the package import path.
type PackageSource struct {
	Path    string
	PkgName string
	types   []*descriptor.TypeDescriptor
	kinds   map[string]TypeKind
}

// Name returns the package import path.
func (s *PackageSource) Name() string {
	return s.Path
}

// Types returns the struct and enum descriptors in declaration order.
func (s *PackageSource) Types() []*descriptor.TypeDescriptor {
	return s.types
}

// Kind reports how the named type of this package was classified.
func (s *PackageSource) Kind(name string) TypeKind {
	return s.kinds[name]
}

// enumConstant is one constant of an enum candidate.
type enumConstant struct {
	name  string
	value string
	pos   token.Pos
}

// enumCandidates groups constants by their named type.
type enumCandidates map[*types.TypeName][]enumConstant
