package typescript

import (
	"strings"
	"text/template"

	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
)

var mappingTemplate = template.Must(template.New("mapping").Parse(`export function to{{.Name}}(r: any): {{.Name}} {
	const item = <{{.Name}}>({
{{range .Fields}}		{{.Local}}: r.{{.Remote}},
{{end}}	});
	return item;
}
`))

type mappingField struct {
	Local  string
	Remote string
}

// MappingGenerator emits toX(r), a shallow copy of a plain object into the
// generated interface that applies renamed properties.
type MappingGenerator struct{}

// Name implements gen.Generator.
func (MappingGenerator) Name() string { return "typescript.mapping" }

// FileExtension implements gen.Generator.
func (MappingGenerator) FileExtension(*mapping.Mapping) string { return FileExtension }

// Generate implements gen.Generator.
func (MappingGenerator) Generate(ctx *gen.Context, m *mapping.Mapping) (string, error) {
	if m.IsEnum {
		return "", nil
	}

	data := struct {
		Name   string
		Fields []mappingField
	}{Name: ctx.LocalType(m.Name)}

	for i := range m.Mappings {
		p := &m.Mappings[i]
		data.Fields = append(data.Fields, mappingField{Local: p.LocalName(), Remote: p.Name})
	}

	var sb strings.Builder
	if err := mappingTemplate.Execute(&sb, data); err != nil {
		return "", err
	}

	return sb.String(), nil
}
