package golang

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-generator/internal/errors"
	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
)

func orderSet() *mapping.Set {
	return mapping.NewSet(
		&mapping.Mapping{
			Name:     "Order",
			FullName: "Shop.Sales.Order",
			Mappings: []mapping.PropertyMapping{
				{Name: "ID", Type: "Int32"},
				{Name: "Customer", Type: "Customer"},
				{Name: "Lines", Type: "OrderLine", IsGeneric: true, IsList: true},
				{Name: "Status", Type: "OrderStatus", IsGeneric: true, IsNullable: true, IsEnum: true},
				{Name: "Notes", Type: "String", IsGeneric: true, IsDictionary: true, DictionaryTypes: []string{"String", "Int32"}},
				{Name: "Created", TransformName: "CreatedAt", Type: "DateTime"},
				{Name: "History", Type: "OrderStatus", IsGeneric: true, IsList: true, IsNullable: true, IsEnum: true},
				{Name: "Email", Type: "String", IsGeneric: true, IsNullable: true},
			},
		},
		&mapping.Mapping{Name: "Customer", IsAReference: true},
		&mapping.Mapping{Name: "OrderLine"},
		&mapping.Mapping{Name: "OrderStatus", IsEnum: true, EnumMembers: []string{"Pending", "Paid", "on_hold"}},
	)
}

func get(t *testing.T, set *mapping.Set, name string) *mapping.Mapping {
	t.Helper()

	m, ok := set.ByName(name)
	require.True(t, ok)

	return m
}

type parsedField struct {
	Type string
	Tag  string
}

func parseStruct(t *testing.T, src, name string) (*ast.File, map[string]parsedField) {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "x.go", src, parser.ParseComments)
	require.NoError(t, err)

	fields := make(map[string]parsedField)

	ast.Inspect(file, func(n ast.Node) bool {
		spec, ok := n.(*ast.TypeSpec)
		if !ok || spec.Name.Name != name {
			return true
		}

		st, ok := spec.Type.(*ast.StructType)
		require.True(t, ok)

		for _, f := range st.Fields.List {
			tag := ""
			if f.Tag != nil {
				tag = f.Tag.Value
			}

			fields[f.Names[0].Name] = parsedField{Type: types.ExprString(f.Type), Tag: tag}
		}

		return false
	})

	return file, fields
}

func TestStructGenerator(t *testing.T) {
	set := orderSet()
	ctx := gen.NewContext(gen.Naming{Package: "shop"}, set)

	out, err := StructGenerator{}.Generate(ctx, get(t, set, "Order"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "// Code generated by mapping-generator. DO NOT EDIT."))
	assert.Contains(t, out, "// Order mirrors Shop.Sales.Order.")

	file, fields := parseStruct(t, out, "Order")
	assert.Equal(t, "shop", file.Name.Name)
	require.Len(t, file.Imports, 1)
	assert.Equal(t, `"time"`, file.Imports[0].Path.Value)

	expected := map[string]parsedField{
		"ID":        {"int32", "`json:\"id\"`"},
		"Customer":  {"Ref[Customer]", "`json:\"customer\"`"},
		"Lines":     {"[]OrderLine", "`json:\"lines\"`"},
		"Status":    {"*OrderStatus", "`json:\"status,omitempty\"`"},
		"Notes":     {"map[string]int32", "`json:\"notes\"`"},
		"CreatedAt": {"time.Time", "`json:\"createdAt\"`"},
		"History":   {"[]*OrderStatus", "`json:\"history\"`"},
		"Email":     {"string", "`json:\"email,omitempty\"`"},
	}
	assert.Equal(t, expected, fields)

	out, err = StructGenerator{}.Generate(ctx, get(t, set, "OrderStatus"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStructGenerator_ReferenceAndPrefix(t *testing.T) {
	set := orderSet()
	ctx := gen.NewContext(gen.Naming{Prefix: "api_"}, set)

	out, err := StructGenerator{}.Generate(ctx, get(t, set, "Customer"))
	require.NoError(t, err)
	assert.Contains(t, out, "package model")
	assert.Contains(t, out, "// ApiCustomer is a reference type, resolved by Id.")
	assert.Contains(t, out, "type ApiCustomer struct")
	assert.NotContains(t, out, "import")
}

func TestStructGenerator_Unformatted(t *testing.T) {
	set := orderSet()
	ctx := gen.NewContext(gen.Naming{ReferenceTypeFormat: "Ref<{0}"}, set)

	_, err := StructGenerator{}.Generate(ctx, get(t, set, "Order"))
	require.Error(t, err)

	var ue *gen.UnformattedError
	require.True(t, errors.As(err, &ue))
	assert.Contains(t, string(ue.Source), "Customer Ref[Customer ")
}

func TestStructGenerator_CyclicTypesCompile(t *testing.T) {
	set := mapping.NewSet(
		&mapping.Mapping{
			Name: "Order",
			Mappings: []mapping.PropertyMapping{
				{Name: "ID", Type: "Int32"},
				{Name: "Customer", Type: "Customer"},
				{Name: "Status", Type: "OrderStatus"},
			},
		},
		&mapping.Mapping{
			Name: "Customer",
			Mappings: []mapping.PropertyMapping{
				{Name: "LastOrder", Type: "Order"},
				{Name: "Orders", Type: "Order", IsGeneric: true, IsList: true},
				{Name: "Referrer", Type: "Customer", IsNullable: true},
			},
		},
		&mapping.Mapping{Name: "OrderStatus", IsEnum: true, EnumMembers: []string{"Pending"}},
	)
	ctx := gen.NewContext(gen.DefaultNaming(), set)

	fset := token.NewFileSet()
	var files []*ast.File

	for _, g := range []gen.Generator{StructGenerator{}, EnumGenerator{}} {
		for _, m := range set.All() {
			out, err := g.Generate(ctx, m)
			require.NoError(t, err)

			if out == "" {
				continue
			}

			file, err := parser.ParseFile(fset, g.Name()+"_"+m.Name+".go", out, 0)
			require.NoError(t, err)
			files = append(files, file)
		}
	}

	require.Len(t, files, 3)

	conf := types.Config{Importer: importer.Default()}
	_, err := conf.Check(gen.DefaultPackage, fset, files, nil)
	require.NoError(t, err)

	_, fields := parseStruct(t, mustGenerate(t, ctx, get(t, set, "Customer")), "Customer")
	assert.Equal(t, "*Order", fields["LastOrder"].Type)
	assert.Equal(t, "[]Order", fields["Orders"].Type)
	assert.Equal(t, "*Customer", fields["Referrer"].Type)

	_, fields = parseStruct(t, mustGenerate(t, ctx, get(t, set, "Order")), "Order")
	assert.Equal(t, "*Customer", fields["Customer"].Type)
	assert.Equal(t, "OrderStatus", fields["Status"].Type)
}

func mustGenerate(t *testing.T, ctx *gen.Context, m *mapping.Mapping) string {
	t.Helper()

	out, err := StructGenerator{}.Generate(ctx, m)
	require.NoError(t, err)

	return out
}

func TestEnumGenerator(t *testing.T) {
	set := orderSet()
	ctx := gen.NewContext(gen.Naming{}, set)

	out, err := EnumGenerator{}.Generate(ctx, get(t, set, "OrderStatus"))
	require.NoError(t, err)

	file, err := parser.ParseFile(token.NewFileSet(), "x.go", out, 0)
	require.NoError(t, err)

	values := make(map[string]string)

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}

		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			assert.Equal(t, "OrderStatus", types.ExprString(vs.Type))
			values[vs.Names[0].Name] = vs.Values[0].(*ast.BasicLit).Value
		}
	}

	assert.Equal(t, map[string]string{
		"OrderStatusPending": `"Pending"`,
		"OrderStatusPaid":    `"Paid"`,
		"OrderStatusOnHold":  `"on_hold"`,
	}, values)
	assert.Contains(t, out, "type OrderStatus string")

	out, err = EnumGenerator{}.Generate(ctx, get(t, set, "Order"))
	require.NoError(t, err)
	assert.Empty(t, out)
}
