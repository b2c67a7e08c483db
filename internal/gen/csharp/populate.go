package csharp

import (
	"fmt"
	"strings"
	"text/template"

	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
)

var populateTemplate = template.Must(template.New("populate").Parse(
	`public static {{.Out}} {{.Method}}({{.In}} {{.InVar}}, {{.Out}} {{.OutVar}} = null) {
	if ({{.OutVar}} == null) { {{.OutVar}} = new {{.Out}}(); }
{{range .Lines}}	{{.}}
{{end}}	return {{.OutVar}};
}
`))

type populateData struct {
	Method string
	In     string
	InVar  string
	Out    string
	OutVar string
	Lines  []string
}

// direction describes which side values are copied from.
type direction struct {
	fromSource bool
}

func (d direction) methodName(ctx *gen.Context, typeName string) string {
	if d.fromSource {
		return "Populate" + ctx.LocalType(typeName) + "FromSource"
	}

	return "Populate" + typeName + "ToSource"
}

// enumType is the enum type name on the destination side.
func (d direction) enumType(ctx *gen.Context, typeName string) string {
	if d.fromSource {
		return ctx.LocalType(typeName)
	}

	return typeName
}

func (d direction) lookup(ctx *gen.Context, typeName, expr string) string {
	if d.fromSource {
		return ctx.ReferenceLookup(ctx.LocalType(typeName), expr)
	}

	return ctx.ReferenceLookup(typeName, expr)
}

// convert renders the conversion of expr, a value of type typeName, to the
// destination side.
func (d direction) convert(ctx *gen.Context, typeName, expr string) string {
	target, known := ctx.Target(typeName)

	switch {
	case descriptor.IsSimpleName(typeName), !known:
		return expr
	case target.IsEnum:
		et := d.enumType(ctx, typeName)
		return fmt.Sprintf("(%s)Enum.Parse(typeof(%s), %s.ToString())", et, et, expr)
	case target.IsAReference:
		return d.lookup(ctx, typeName, expr)
	default:
		return d.methodName(ctx, typeName) + "(" + expr + ")"
	}
}

// assignment renders the statement copying property p.
func (d direction) assignment(ctx *gen.Context, p *mapping.PropertyMapping, src, dst string) string {
	guard := func(stmt string) string {
		return fmt.Sprintf("if (%s != null) { %s }", src, stmt)
	}

	switch {
	case p.IsDictionary:
		return fmt.Sprintf("if (%s != null && %s.Any()) { %s = %s.ToDictionary(pair => %s, pair => %s); }",
			src, src, dst, src,
			d.convert(ctx, p.DictionaryKey(), "pair.Key"),
			d.convert(ctx, p.DictionaryValue(), "pair.Value"),
		)

	case p.IsList:
		elem := d.convert(ctx, p.Type, "r")
		if p.IsNullable && ctx.IsEnum(p.Type) {
			elem = fmt.Sprintf("r != null ? (%s?)%s : null", d.enumType(ctx, p.Type), elem)
		}

		if elem == "r" {
			return fmt.Sprintf("if (%s != null && %s.Any()) { %s = %s.ToList(); }", src, src, dst, src)
		}

		return fmt.Sprintf("if (%s != null && %s.Any()) { %s = %s.Select(r => %s).ToList(); }", src, src, dst, src, elem)

	case p.IsSquashedType && d.fromSource:
		return guard(fmt.Sprintf("%s = %s.%s;", dst, src, p.SquashedValue))

	case p.IsSquashedType:
		return fmt.Sprintf("%s = new %s { %s = %s };", dst, p.SquashedType, p.SquashedValue, src)

	case ctx.IsEnum(p.Type):
		stmt := fmt.Sprintf("%s = %s;", dst, d.convert(ctx, p.Type, src))
		if p.IsNullable {
			return guard(stmt)
		}

		return stmt
	}

	if _, known := ctx.Target(p.Type); known && !descriptor.IsSimpleName(p.Type) {
		return guard(fmt.Sprintf("%s = %s;", dst, d.convert(ctx, p.Type, src)))
	}

	stmt := fmt.Sprintf("%s = %s;", dst, src)
	if p.IsNullable {
		return guard(stmt)
	}

	return stmt
}

func (d direction) render(ctx *gen.Context, m *mapping.Mapping) (string, error) {
	local, remote := ctx.LocalType(m.Name), m.Name

	data := populateData{Method: d.methodName(ctx, m.Name)}
	if d.fromSource {
		data.In, data.InVar, data.Out, data.OutVar = remote, "remote", local, "local"
	} else {
		data.In, data.InVar, data.Out, data.OutVar = local, "local", remote, "remote"
	}

	for i := range m.Mappings {
		p := &m.Mappings[i]

		remoteProp, localProp := "remote."+p.Name, "local."+p.LocalName()

		if d.fromSource {
			data.Lines = append(data.Lines, d.assignment(ctx, p, remoteProp, localProp))
			continue
		}

		if p.IsReadOnly {
			continue
		}

		data.Lines = append(data.Lines, d.assignment(ctx, p, localProp, remoteProp))
	}

	var sb strings.Builder
	if err := populateTemplate.Execute(&sb, data); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// FromSourceGenerator emits PopulateXFromSource, copying a source object
// into the generated class.
type FromSourceGenerator struct{}

// Name implements gen.Generator.
func (FromSourceGenerator) Name() string { return "csharp.from-source" }

// FileExtension implements gen.Generator.
func (FromSourceGenerator) FileExtension(*mapping.Mapping) string { return FileExtension }

// Generate implements gen.Generator.
func (FromSourceGenerator) Generate(ctx *gen.Context, m *mapping.Mapping) (string, error) {
	if m.IsEnum {
		return "", nil
	}

	return direction{fromSource: true}.render(ctx, m)
}

// ToSourceGenerator emits PopulateXToSource, the reverse copy. Read-only
// properties are left alone.
type ToSourceGenerator struct{}

// Name implements gen.Generator.
func (ToSourceGenerator) Name() string { return "csharp.to-source" }

// FileExtension implements gen.Generator.
func (ToSourceGenerator) FileExtension(*mapping.Mapping) string { return FileExtension }

// Generate implements gen.Generator.
func (ToSourceGenerator) Generate(ctx *gen.Context, m *mapping.Mapping) (string, error) {
	if m.IsEnum {
		return "", nil
	}

	return direction{}.render(ctx, m)
}
