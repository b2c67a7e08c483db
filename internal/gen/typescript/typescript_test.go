package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
)

func orderSet() *mapping.Set {
	return mapping.NewSet(
		&mapping.Mapping{
			Name: "Order",
			Mappings: []mapping.PropertyMapping{
				{Name: "Id", TransformName: "UniqueId", Type: "Int32"},
				{Name: "Customer", Type: "Customer"},
				{Name: "Lines", Type: "OrderLine", IsGeneric: true, IsList: true},
				{Name: "Status", Type: "OrderStatus", IsGeneric: true, IsNullable: true, IsEnum: true},
				{Name: "Notes", Type: "String", IsGeneric: true, IsDictionary: true, DictionaryTypes: []string{"String", "Int32"}},
				{Name: "Created", Type: "DateTime"},
				{Name: "Paid", Type: "Boolean"},
			},
		},
		&mapping.Mapping{Name: "Customer", IsAReference: true},
		&mapping.Mapping{Name: "OrderLine"},
		&mapping.Mapping{Name: "OrderStatus", IsEnum: true, EnumMembers: []string{"Pending", "Paid"}},
	)
}

func get(t *testing.T, set *mapping.Set, name string) *mapping.Mapping {
	t.Helper()

	m, ok := set.ByName(name)
	require.True(t, ok)

	return m
}

func TestEnumGenerator(t *testing.T) {
	set := orderSet()
	ctx := gen.NewContext(gen.Naming{Postfix: "Model"}, set)

	out, err := EnumGenerator{}.Generate(ctx, get(t, set, "OrderStatus"))
	require.NoError(t, err)
	assert.Equal(t, "export enum OrderStatusModel {\n\tPending,\n\tPaid,\n}\n", out)

	out, err = EnumGenerator{}.Generate(ctx, get(t, set, "Order"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestInterfaceGenerator(t *testing.T) {
	set := orderSet()
	ctx := gen.NewContext(gen.Naming{Postfix: "Model", ReferenceTypeFormat: "Ref<{0}>"}, set)

	out, err := InterfaceGenerator{}.Generate(ctx, get(t, set, "Order"))
	require.NoError(t, err)

	expected := `export interface OrderModel {
	UniqueId: number;
	Customer: Ref<CustomerModel>;
	Lines: OrderLineModel[];
	Status?: OrderStatusModel;
	Notes: { [key: string]: number };
	Created: Date;
	Paid: boolean;
}
`
	assert.Equal(t, expected, out)

	out, err = InterfaceGenerator{}.Generate(ctx, get(t, set, "OrderStatus"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMappingGenerator(t *testing.T) {
	set := orderSet()
	ctx := gen.NewContext(gen.Naming{}, set)

	out, err := MappingGenerator{}.Generate(ctx, get(t, set, "Order"))
	require.NoError(t, err)

	assert.Contains(t, out, "export function toOrder(r: any): Order {\n\tconst item = <Order>({\n")
	assert.Contains(t, out, "\t\tUniqueId: r.Id,\n")
	assert.Contains(t, out, "\t\tCustomer: r.Customer,\n")
	assert.Contains(t, out, "\t});\n\treturn item;\n}\n")
}
