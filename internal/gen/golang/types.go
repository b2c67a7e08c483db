package golang

import (
	"strings"

	"mapping-generator/internal/common"
	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
	"mapping-generator/internal/match"
)

// FileExtension is shared by the Go generators.
const FileExtension = ".go"

// typeRef is a Go type expression.
type typeRef struct {
	Package     string // import path, empty for builtins and generated types
	Name        string
	IsPointer   bool
	IsSlice     bool
	IsReference bool
	Key         *typeRef // map key, set for maps
	Elem        *typeRef // slice or map element
}

// String returns the type as written in source (e.g. "[]*Status", "map[string]int32").
func (t typeRef) String() string {
	var sb strings.Builder

	if t.IsPointer {
		sb.WriteString("*")
	}

	switch {
	case t.Key != nil:
		sb.WriteString("map[" + t.Key.String() + "]" + t.Elem.String())
		return sb.String()
	case t.IsSlice:
		sb.WriteString("[]" + t.Elem.String())
		return sb.String()
	}

	if t.Package != "" {
		sb.WriteString(common.PkgAlias(t.Package) + ".")
	}

	sb.WriteString(t.Name)

	return sb.String()
}

// imports collects the import paths t needs.
func (t typeRef) imports(into map[string]bool) {
	if t.Package != "" {
		into[t.Package] = true
	}

	if t.Key != nil {
		t.Key.imports(into)
	}

	if t.Elem != nil {
		t.Elem.imports(into)
	}
}

var builtins = map[string]typeRef{
	descriptor.Boolean:        {Name: "bool"},
	descriptor.Byte:           {Name: "byte"},
	descriptor.Char:           {Name: "rune"},
	descriptor.DateTime:       {Package: "time", Name: "Time"},
	descriptor.DateTimeOffset: {Package: "time", Name: "Time"},
	descriptor.Decimal:        {Name: "float64"},
	descriptor.Double:         {Name: "float64"},
	descriptor.Int16:          {Name: "int16"},
	descriptor.Int32:          {Name: "int32"},
	descriptor.Int64:          {Name: "int64"},
	descriptor.SByte:          {Name: "int8"},
	descriptor.Single:         {Name: "float32"},
	descriptor.String:         {Name: "string"},
	descriptor.UInt16:         {Name: "uint16"},
	descriptor.UInt32:         {Name: "uint32"},
	descriptor.UInt64:         {Name: "uint64"},
	descriptor.Object:         {Name: "any"},
}

// typeName is the exported Go name of a generated type.
func typeName(ctx *gen.Context, name string) string {
	return match.Pascal(ctx.LocalType(name))
}

// elementType is the Go type of a single value of type name.
func elementType(ctx *gen.Context, name string) typeRef {
	if t, ok := builtins[name]; ok {
		return t
	}

	if ctx.IsReference(name) {
		return typeRef{Name: referenceType(ctx, name), IsReference: true}
	}

	return typeRef{Name: typeName(ctx, name)}
}

// referenceType renders the reference format with Go's type argument
// brackets, so "Ref<{0}>" becomes Ref[Customer].
func referenceType(ctx *gen.Context, name string) string {
	return genericBrackets.Replace(gen.Format(ctx.Naming.ReferenceTypeFormat, typeName(ctx, name)))
}

var genericBrackets = strings.NewReplacer("<", "[", ">", "]")

func isValueType(ctx *gen.Context, name string) bool {
	return descriptor.IsValueTypeName(name) || ctx.IsEnum(name)
}

// isStruct reports whether name is generated as a struct held by value.
func isStruct(ctx *gen.Context, name string) bool {
	_, builtin := builtins[name]
	return !builtin && !ctx.IsEnum(name)
}

// fieldType is the Go type of a property. Nullable value types become
// pointers, and so does every single nested struct: the type graph may be
// cyclic and a struct cannot contain itself by value.
func fieldType(ctx *gen.Context, p *mapping.PropertyMapping) typeRef {
	if p.IsDictionary {
		key, val := elementType(ctx, p.DictionaryKey()), elementType(ctx, p.DictionaryValue())
		return typeRef{Key: &key, Elem: &val}
	}

	elem := elementType(ctx, p.Type)
	if p.IsNullable && isValueType(ctx, p.Type) {
		elem.IsPointer = true
	}

	if !p.IsList && !elem.IsReference && isStruct(ctx, p.Type) {
		elem.IsPointer = true
	}

	if p.IsList {
		return typeRef{IsSlice: true, Elem: &elem}
	}

	return elem
}
