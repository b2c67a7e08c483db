package csharp

import (
	"strings"
	"text/template"

	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
)

var classTemplate = template.Must(template.New("class").Parse(`{{if .Reference}}// Reference type: resolved by {{.LookupKey}} instead of being copied.
{{end}}public class {{.Name}} {
{{range .Fields}}	public {{.Type}} {{.Name}} { get; set; }
{{end}}}
`))

type classField struct {
	Name string
	Type string
}

type classData struct {
	Name      string
	Reference bool
	LookupKey string
	Fields    []classField
}

// ClassGenerator emits a C# class with one auto property per mapped
// property.
type ClassGenerator struct {
	// NullableValues wraps every value-type property in Nullable<>.
	NullableValues bool
}

// Name implements gen.Generator.
func (g ClassGenerator) Name() string {
	if g.NullableValues {
		return "csharp.nullable-class"
	}

	return "csharp.class"
}

// FileExtension implements gen.Generator.
func (ClassGenerator) FileExtension(*mapping.Mapping) string { return FileExtension }

// Generate implements gen.Generator.
func (g ClassGenerator) Generate(ctx *gen.Context, m *mapping.Mapping) (string, error) {
	if m.IsEnum {
		return "", nil
	}

	data := classData{
		Name:      ctx.LocalType(m.Name),
		Reference: m.IsAReference,
		LookupKey: ctx.Naming.ReferenceLookupKey,
	}

	for i := range m.Mappings {
		p := &m.Mappings[i]
		data.Fields = append(data.Fields, classField{
			Name: p.LocalName(),
			Type: fieldType(ctx, p, g.NullableValues),
		})
	}

	var sb strings.Builder
	if err := classTemplate.Execute(&sb, data); err != nil {
		return "", err
	}

	return sb.String(), nil
}
