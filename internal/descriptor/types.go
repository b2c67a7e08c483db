package descriptor

import (
	"strings"
)

// Namespaces of the platform vocabulary shared by every source.
const (
	SystemNamespace     = "System"
	CollectionNamespace = "System.Collections.Generic"

	// PlatformModule owns the simple types and the date/time types. Types from
	// this module are removed from a closure by default.
	PlatformModule = "System.Private.CoreLib"
)

// TypeRef is a declared type reference as seen from a property.
// A reference with Args is generic.
type TypeRef struct {
	// Name is the short type name, e.g. "Int32", "Order" or "List".
	Name string
	// Namespace qualifies Name. Empty means "resolve by short name".
	Namespace string
	// Module identifies the owning module. For unqualified references it is
	// the module that declared the reference and only biases resolution.
	Module string
	// Args are the generic type arguments in declaration order.
	Args []*TypeRef
}

// FullName returns Namespace.Name, or Name when there is no namespace.
func (r *TypeRef) FullName() string {
	if r.Namespace == "" {
		return r.Name
	}

	return r.Namespace + "." + r.Name
}

// IsGeneric reports whether the reference carries generic arguments.
func (r *TypeRef) IsGeneric() bool {
	return len(r.Args) > 0
}

// Arg returns the i-th generic argument or nil.
func (r *TypeRef) Arg(i int) *TypeRef {
	if i < 0 || i >= len(r.Args) {
		return nil
	}

	return r.Args[i]
}

// String renders the reference as a type expression, e.g.
// "Dictionary<String, List<Order>>".
func (r *TypeRef) String() string {
	if r == nil {
		return "<nil>"
	}

	var b strings.Builder

	r.write(&b)

	return b.String()
}

func (r *TypeRef) write(b *strings.Builder) {
	b.WriteString(r.Name)

	if len(r.Args) == 0 {
		return
	}

	b.WriteByte('<')

	for i, a := range r.Args {
		if i > 0 {
			b.WriteString(", ")
		}

		a.write(b)
	}

	b.WriteByte('>')
}

// Shape classifies generic references.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeNullable
	ShapeList
	ShapeDictionary
	ShapeGeneric
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeNullable:
		return "nullable"
	case ShapeList:
		return "list"
	case ShapeDictionary:
		return "dictionary"
	case ShapeGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Shape names recognized on generic references.
const (
	NullableName   = "Nullable"
	ListName       = "List"
	DictionaryName = "Dictionary"
)

var listNames = map[string]bool{
	ListName:      true,
	"IList":       true,
	"ICollection": true,
	"IEnumerable": true,
}

var dictionaryNames = map[string]bool{
	DictionaryName: true,
	"IDictionary":  true,
}

// ShapeOf classifies r. Non-generic references are ShapeNone.
func ShapeOf(r *TypeRef) Shape {
	if r == nil || !r.IsGeneric() {
		return ShapeNone
	}

	if !isPlatformNamespace(r.Namespace) {
		return ShapeGeneric
	}

	switch {
	case r.Name == NullableName && len(r.Args) == 1:
		return ShapeNullable
	case listNames[r.Name] && len(r.Args) == 1:
		return ShapeList
	case dictionaryNames[r.Name] && len(r.Args) == 2:
		return ShapeDictionary
	default:
		return ShapeGeneric
	}
}

// UnwrapNullable returns the argument of a Nullable reference, or r itself.
func UnwrapNullable(r *TypeRef) *TypeRef {
	if ShapeOf(r) == ShapeNullable {
		return r.Args[0]
	}

	return r
}

func isPlatformNamespace(ns string) bool {
	return ns == "" || ns == SystemNamespace || ns == CollectionNamespace
}

// NullableOf wraps elem in the platform Nullable shape.
func NullableOf(elem *TypeRef) *TypeRef {
	return &TypeRef{Name: NullableName, Namespace: SystemNamespace, Module: PlatformModule, Args: []*TypeRef{elem}}
}

// ListOf wraps elem in the platform List shape.
func ListOf(elem *TypeRef) *TypeRef {
	return &TypeRef{Name: ListName, Namespace: CollectionNamespace, Module: PlatformModule, Args: []*TypeRef{elem}}
}

// DictionaryOf builds the platform Dictionary shape.
func DictionaryOf(key, value *TypeRef) *TypeRef {
	return &TypeRef{
		Name:      DictionaryName,
		Namespace: CollectionNamespace,
		Module:    PlatformModule,
		Args:      []*TypeRef{key, value},
	}
}

// TypeDescriptor is a named type declared by a Source.
type TypeDescriptor struct {
	Name      string
	Namespace string
	Module    string

	IsEnum bool
	// EnumMembers lists member names in declaration order.
	EnumMembers []string

	// Properties in declaration order. Always empty for enums.
	Properties []PropertyDescriptor
}

// FullName returns Namespace.Name, or Name when there is no namespace.
func (d *TypeDescriptor) FullName() string {
	if d.Namespace == "" {
		return d.Name
	}

	return d.Namespace + "." + d.Name
}

// Ref returns a fully qualified reference to d.
func (d *TypeDescriptor) Ref() *TypeRef {
	return &TypeRef{Name: d.Name, Namespace: d.Namespace, Module: d.Module}
}

// PropertyDescriptor is one declared property of a TypeDescriptor.
type PropertyDescriptor struct {
	Name string
	// Tags are the names of custom metadata attached to the property.
	Tags []string
	Type *TypeRef
	// ReadOnly properties have no setter.
	ReadOnly bool
}

// Source supplies type descriptors for one module.
type Source interface {
	Name() string
	Types() []*TypeDescriptor
}

// StaticSource is a Source over an in-memory list.
type StaticSource struct {
	name  string
	types []*TypeDescriptor
}

// NewStaticSource returns a Source named name serving types in order.
func NewStaticSource(name string, types ...*TypeDescriptor) *StaticSource {
	return &StaticSource{name: name, types: types}
}

// Name returns the module identity.
func (s *StaticSource) Name() string {
	return s.name
}

// Types returns the descriptors in declaration order.
func (s *StaticSource) Types() []*TypeDescriptor {
	return s.types
}
