package typescript

import (
	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
)

// FileExtension is shared by every TypeScript generator.
const FileExtension = ".ts"

var simpleTypes = map[string]string{
	descriptor.Boolean:        "boolean",
	descriptor.Byte:           "number",
	descriptor.Char:           "string",
	descriptor.DateTime:       "Date",
	descriptor.DateTimeOffset: "Date",
	descriptor.Decimal:        "number",
	descriptor.Double:         "number",
	descriptor.Int16:          "number",
	descriptor.Int32:          "number",
	descriptor.Int64:          "number",
	descriptor.SByte:          "number",
	descriptor.Single:         "number",
	descriptor.String:         "string",
	descriptor.UInt16:         "number",
	descriptor.UInt32:         "number",
	descriptor.UInt64:         "number",
	descriptor.Object:         "any",
}

// elementType is the TypeScript type of a single value of type name.
func elementType(ctx *gen.Context, name string) string {
	if ts, ok := simpleTypes[name]; ok {
		return ts
	}

	if ctx.IsReference(name) {
		return ctx.ReferenceType(name)
	}

	return ctx.LocalType(name)
}

// fieldType renders the TypeScript type of a property. Nullability is
// expressed on the field name, not here.
func fieldType(ctx *gen.Context, p *mapping.PropertyMapping) string {
	switch {
	case p.IsDictionary:
		return "{ [key: " + elementType(ctx, p.DictionaryKey()) + "]: " + elementType(ctx, p.DictionaryValue()) + " }"
	case p.IsList:
		elem := elementType(ctx, p.Type)
		if p.IsNullable {
			return "(" + elem + " | null)[]"
		}

		return elem + "[]"
	default:
		return elementType(ctx, p.Type)
	}
}
