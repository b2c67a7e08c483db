package golang

import (
	"strings"
	"text/template"

	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
	"mapping-generator/internal/match"
)

var enumTemplate = template.Must(template.New("enum").Parse(`package {{.Package}}

// {{.Name}} enumerates the values of {{.Source}}.
type {{.Name}} string
{{if .Members}}
const (
{{range .Members}}	{{.Const}} {{$.Name}} = "{{.Value}}"
{{end}})
{{end}}`))

type enumMember struct {
	Const string
	Value string
}

// EnumGenerator emits a string type with one constant per member.
type EnumGenerator struct{}

// Name implements gen.Generator.
func (EnumGenerator) Name() string { return "golang.enum" }

// FileExtension implements gen.Generator.
func (EnumGenerator) FileExtension(*mapping.Mapping) string { return FileExtension }

// Generate implements gen.Generator.
func (EnumGenerator) Generate(ctx *gen.Context, m *mapping.Mapping) (string, error) {
	if !m.IsEnum {
		return "", nil
	}

	name := typeName(ctx, m.Name)

	data := struct {
		Package string
		Name    string
		Source  string
		Members []enumMember
	}{Package: ctx.Naming.Package, Name: name, Source: m.Name}

	for _, v := range m.EnumMembers {
		c := match.Pascal(v)
		if !strings.HasPrefix(c, name) {
			c = name + c
		}

		data.Members = append(data.Members, enumMember{Const: c, Value: v})
	}

	return render(enumTemplate, data)
}
