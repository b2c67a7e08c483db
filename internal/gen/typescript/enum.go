package typescript

import (
	"strings"
	"text/template"

	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
)

var enumTemplate = template.Must(template.New("enum").Parse(`export enum {{.Name}} {
{{range .Members}}	{{.}},
{{end}}}
`))

// EnumGenerator emits a TypeScript enum for enum mappings.
type EnumGenerator struct{}

// Name implements gen.Generator.
func (EnumGenerator) Name() string { return "typescript.enum" }

// FileExtension implements gen.Generator.
func (EnumGenerator) FileExtension(*mapping.Mapping) string { return FileExtension }

// Generate implements gen.Generator.
func (EnumGenerator) Generate(ctx *gen.Context, m *mapping.Mapping) (string, error) {
	if !m.IsEnum {
		return "", nil
	}

	var sb strings.Builder

	err := enumTemplate.Execute(&sb, struct {
		Name    string
		Members []string
	}{ctx.LocalType(m.Name), m.EnumMembers})

	return sb.String(), err
}
