package golang

import (
	"text/template"

	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
	"mapping-generator/internal/match"
)

var structTemplate = template.Must(template.New("struct").Parse(`package {{.Package}}
{{if .Imports}}
import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}
{{if .Reference}}// {{.Name}} is a reference type, resolved by {{.LookupKey}}.
{{else}}// {{.Name}} mirrors {{.Source}}.
{{end}}type {{.Name}} struct {
{{range .Fields}}	{{.Name}} {{.Type}} ` + "`json:\"{{.Tag}}\"`" + `
{{end}}}
`))

type structField struct {
	Name string
	Type string
	Tag  string
}

type structData struct {
	Package   string
	Imports   []string
	Name      string
	Source    string
	Reference bool
	LookupKey string
	Fields    []structField
}

// StructGenerator emits a Go struct per class mapping.
type StructGenerator struct{}

// Name implements gen.Generator.
func (StructGenerator) Name() string { return "golang.struct" }

// FileExtension implements gen.Generator.
func (StructGenerator) FileExtension(*mapping.Mapping) string { return FileExtension }

// Generate implements gen.Generator.
func (StructGenerator) Generate(ctx *gen.Context, m *mapping.Mapping) (string, error) {
	if m.IsEnum {
		return "", nil
	}

	data := structData{
		Package:   ctx.Naming.Package,
		Name:      typeName(ctx, m.Name),
		Source:    m.FullName,
		Reference: m.IsAReference,
		LookupKey: ctx.Naming.ReferenceLookupKey,
	}

	if data.Source == "" {
		data.Source = m.Name
	}

	imports := make(map[string]bool)

	for i := range m.Mappings {
		p := &m.Mappings[i]
		t := fieldType(ctx, p)
		t.imports(imports)

		tag := match.Camel(p.LocalName())
		if p.IsNullable && !p.IsList {
			tag += ",omitempty"
		}

		data.Fields = append(data.Fields, structField{
			Name: match.Pascal(p.LocalName()),
			Type: t.String(),
			Tag:  tag,
		})
	}

	data.Imports = sortedKeys(imports)

	return render(structTemplate, data)
}
