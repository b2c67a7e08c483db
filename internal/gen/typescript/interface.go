package typescript

import (
	"strings"
	"text/template"

	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
)

var interfaceTemplate = template.Must(template.New("interface").Parse(`{{if .Reference}}// Reference type: resolved by {{.LookupKey}} instead of being copied.
{{end}}export interface {{.Name}} {
{{range .Fields}}	{{.Name}}{{if .Optional}}?{{end}}: {{.Type}};
{{end}}}
`))

type interfaceField struct {
	Name     string
	Type     string
	Optional bool
}

// InterfaceGenerator emits a TypeScript interface per class mapping.
type InterfaceGenerator struct{}

// Name implements gen.Generator.
func (InterfaceGenerator) Name() string { return "typescript.interface" }

// FileExtension implements gen.Generator.
func (InterfaceGenerator) FileExtension(*mapping.Mapping) string { return FileExtension }

// Generate implements gen.Generator.
func (InterfaceGenerator) Generate(ctx *gen.Context, m *mapping.Mapping) (string, error) {
	if m.IsEnum {
		return "", nil
	}

	data := struct {
		Name      string
		Reference bool
		LookupKey string
		Fields    []interfaceField
	}{
		Name:      ctx.LocalType(m.Name),
		Reference: m.IsAReference,
		LookupKey: ctx.Naming.ReferenceLookupKey,
	}

	for i := range m.Mappings {
		p := &m.Mappings[i]
		data.Fields = append(data.Fields, interfaceField{
			Name:     p.LocalName(),
			Type:     fieldType(ctx, p),
			Optional: p.IsNullable && !p.IsList,
		})
	}

	var sb strings.Builder
	if err := interfaceTemplate.Execute(&sb, data); err != nil {
		return "", err
	}

	return sb.String(), nil
}
