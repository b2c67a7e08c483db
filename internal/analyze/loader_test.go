package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-generator/internal/descriptor"
)

const (
	storePkg     = "mapping-generator/store"
	warehousePkg = "mapping-generator/warehouse"
)

func loadSources(t *testing.T, patterns ...string) map[string]*PackageSource {
	t.Helper()

	sources, err := NewAnalyzer(nil).LoadPackages(context.Background(), patterns...)
	require.NoError(t, err)

	bySource := make(map[string]*PackageSource, len(sources))
	for _, s := range sources {
		bySource[s.Name()] = s
	}

	return bySource
}

func findType(t *testing.T, src descriptor.Source, name string) *descriptor.TypeDescriptor {
	t.Helper()

	for _, d := range src.Types() {
		if d.Name == name {
			return d
		}
	}

	require.Failf(t, "type not found", "%s in %s", name, src.Name())

	return nil
}

func findProperty(t *testing.T, d *descriptor.TypeDescriptor, name string) descriptor.PropertyDescriptor {
	t.Helper()

	for _, p := range d.Properties {
		if p.Name == name {
			return p
		}
	}

	require.Failf(t, "property not found", "%s.%s", d.Name, name)

	return descriptor.PropertyDescriptor{}
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	sources := loadSources(t, storePkg, warehousePkg)

	require.Contains(t, sources, storePkg)
	require.Contains(t, sources, warehousePkg)

	store := sources[storePkg]
	assert.Equal(t, "store", store.PkgName)

	var names []string
	for _, d := range store.Types() {
		names = append(names, d.Name)
	}

	// Declaration order, Email collapses to String.
	assert.Equal(t, []string{"Order", "Customer", "Address", "OrderLine", "Product", "Money", "OrderStatus"}, names)
	assert.Equal(t, TypeKindAlias, store.Kind("Email"))
	assert.Equal(t, TypeKindGeneric, sources[warehousePkg].Kind("Page"))
}

func TestAnalyzer_StoreOrderProperties(t *testing.T) {
	store := loadSources(t, storePkg)[storePkg]
	order := findType(t, store, "Order")

	assert.Equal(t, storePkg, order.Namespace)
	assert.Equal(t, storePkg, order.Module)

	var names []string
	for _, p := range order.Properties {
		names = append(names, p.Name)
	}

	// Unexported and json:"-" fields are skipped.
	assert.Equal(t, []string{"ID", "Customer", "Lines", "Status", "PreviousStatus", "Total", "Notes", "OrderedAt"}, names)

	tests := []struct {
		property string
		want     string
		shape    descriptor.Shape
	}{
		{"ID", "Int32", descriptor.ShapeNone},
		{"Customer", "Customer", descriptor.ShapeNone},
		{"Lines", "List<OrderLine>", descriptor.ShapeList},
		{"Status", "OrderStatus", descriptor.ShapeNone},
		{"PreviousStatus", "Nullable<OrderStatus>", descriptor.ShapeNullable},
		{"Notes", "Dictionary<String, String>", descriptor.ShapeDictionary},
		{"OrderedAt", "DateTime", descriptor.ShapeNone},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			p := findProperty(t, order, tt.property)
			assert.Equal(t, tt.want, p.Type.String())
			assert.Equal(t, tt.shape, descriptor.ShapeOf(p.Type))
		})
	}
}

func TestAnalyzer_FieldTags(t *testing.T) {
	store := loadSources(t, storePkg)[storePkg]

	line := findType(t, store, "OrderLine")
	assert.Equal(t, []string{"db", "json"}, findProperty(t, line, "Product").Tags)
	assert.Equal(t, []string{"json"}, findProperty(t, line, "Quantity").Tags)
}

func TestAnalyzer_PointerToStringIsNullable(t *testing.T) {
	store := loadSources(t, storePkg)[storePkg]
	customer := findType(t, store, "Customer")

	addr := findProperty(t, customer, "Address")
	assert.Equal(t, "Nullable<String>", addr.Type.String())
	assert.True(t, descriptor.IsSimple(addr.Type))
}

func TestAnalyzer_Enums(t *testing.T) {
	sources := loadSources(t, storePkg, warehousePkg)

	status := findType(t, sources[storePkg], "OrderStatus")
	assert.True(t, status.IsEnum)
	assert.Equal(t, []string{"Pending", "Paid", "Shipped", "Cancelled"}, status.EnumMembers)

	// Integer enums fall back to constant names.
	priority := findType(t, sources[warehousePkg], "Priority")
	assert.True(t, priority.IsEnum)
	assert.Equal(t, []string{"PriorityLow", "PriorityNormal", "PriorityUrgent"}, priority.EnumMembers)
}

func TestAnalyzer_GenericInstantiation(t *testing.T) {
	warehouse := loadSources(t, warehousePkg)[warehousePkg]
	order := findType(t, warehouse, "Order")

	page := findProperty(t, order, "Page")
	assert.Equal(t, "Page<Item>", page.Type.String())
	assert.Equal(t, descriptor.ShapeGeneric, descriptor.ShapeOf(page.Type))

	packed := findProperty(t, order, "Packed")
	assert.Equal(t, "Nullable<DateTime>", packed.Type.String())
}

func TestTagKeys(t *testing.T) {
	tests := []struct {
		tag  string
		want []string
	}{
		{``, nil},
		{`json:"id"`, []string{"json"}},
		{`gorm:"primaryKey"  json:"id"`, []string{"gorm", "json"}},
		{`json:"a\"b" yaml:"x"`, []string{"json", "yaml"}},
		{`broken`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, tagKeys(tt.tag))
		})
	}
}

func TestIsIdent(t *testing.T) {
	assert.True(t, isIdent("Pending"))
	assert.True(t, isIdent("_x1"))
	assert.False(t, isIdent("1x"))
	assert.False(t, isIdent("in-progress"))
	assert.False(t, isIdent(""))
}
