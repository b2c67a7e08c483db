package gen

import (
	"slices"
	"testing"

	"mapping-generator/internal/mapping"
)

func TestTopoSort_Order(t *testing.T) {
	order, broken := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return nil
		case 1:
			return []int{0, 0}
		case 2:
			return []int{1}
		default:
			return nil
		}
	})
	if broken {
		t.Fatalf("expected no cycle")
	}

	exp := []int{0, 1, 2}
	if !slices.Equal(order, exp) {
		t.Fatalf("expected %v, got %v", exp, order)
	}
}

func TestTopoSort_Cycle(t *testing.T) {
	order, broken := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{0}
		default:
			return []int{1}
		}
	})
	if !broken {
		t.Fatalf("expected a broken cycle")
	}

	exp := []int{0, 1, 2}
	if !slices.Equal(order, exp) {
		t.Fatalf("expected %v, got %v", exp, order)
	}
}

func TestDependencyOrder(t *testing.T) {
	set := mapping.NewSet(
		&mapping.Mapping{Name: "Order", Mappings: []mapping.PropertyMapping{
			{Name: "Customer", Type: "Customer"},
			{Name: "Lines", Type: "OrderLine", IsGeneric: true, IsList: true},
			{Name: "Total", Type: "Int64", IsSquashedType: true, SquashedValue: "Cents", SquashedType: "Money"},
		}},
		&mapping.Mapping{Name: "Customer", Mappings: []mapping.PropertyMapping{{Name: "LastOrder", Type: "Order"}}},
		&mapping.Mapping{Name: "OrderLine", Mappings: []mapping.PropertyMapping{{Name: "Product", Type: "Product"}}},
		&mapping.Mapping{Name: "Product"},
		&mapping.Mapping{Name: "Money"},
	)

	var names []string
	for _, m := range dependencyOrder(set) {
		names = append(names, m.Name)
	}

	exp := []string{"Product", "OrderLine", "Money", "Order", "Customer"}
	if !slices.Equal(names, exp) {
		t.Fatalf("expected %v, got %v", exp, names)
	}
}
