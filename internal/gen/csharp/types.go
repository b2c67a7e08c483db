package csharp

import (
	"fmt"

	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
)

// FileExtension is shared by every C# generator.
const FileExtension = ".cs"

// elementType is the local C# type of a single value of type name.
func elementType(ctx *gen.Context, name string) string {
	switch {
	case descriptor.IsSimpleName(name), name == descriptor.Object:
		return name
	case ctx.IsReference(name):
		return ctx.ReferenceType(name)
	default:
		return ctx.LocalType(name)
	}
}

// isValueType reports whether values of type name cannot be null without
// Nullable<>.
func isValueType(ctx *gen.Context, name string) bool {
	return descriptor.IsValueTypeName(name) || ctx.IsEnum(name)
}

// fieldType renders the declared C# type of a property. With
// nullableValues every value-type field is wrapped in Nullable<>.
func fieldType(ctx *gen.Context, p *mapping.PropertyMapping, nullableValues bool) string {
	if p.IsDictionary {
		return fmt.Sprintf("Dictionary<%s, %s>", elementType(ctx, p.DictionaryKey()), elementType(ctx, p.DictionaryValue()))
	}

	elem := elementType(ctx, p.Type)

	if p.IsList {
		if p.IsNullable && isValueType(ctx, p.Type) {
			elem = "Nullable<" + elem + ">"
		}

		return "List<" + elem + ">"
	}

	if (p.IsNullable || nullableValues) && isValueType(ctx, p.Type) {
		return "Nullable<" + elem + ">"
	}

	return elem
}
