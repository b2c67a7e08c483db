package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-generator/internal/errors"
)

func TestParseTypeExpr(t *testing.T) {
	tests := []struct {
		expr  string
		want  string
		shape Shape
	}{
		{"Int32", "Int32", ShapeNone},
		{"int", "Int32", ShapeNone},
		{"Order", "Order", ShapeNone},
		{"int?", "Nullable<Int32>", ShapeNullable},
		{"OrderStatus?", "Nullable<OrderStatus>", ShapeNullable},
		{"List<OrderLine>", "List<OrderLine>", ShapeList},
		{"OrderLine[]", "List<OrderLine>", ShapeList},
		{"IEnumerable<string>", "IEnumerable<String>", ShapeList},
		{"Dictionary<string, int>", "Dictionary<String, Int32>", ShapeDictionary},
		{"IDictionary< String ,Order >", "IDictionary<String, Order>", ShapeDictionary},
		{"List<OrderStatus?>", "List<Nullable<OrderStatus>>", ShapeList},
		{"Page<Order>", "Page<Order>", ShapeGeneric},
		{"Shop.Domain.Order", "Order", ShapeNone},
		{"System.Collections.Generic.List<int>", "List<Int32>", ShapeList},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			ref, err := ParseTypeExpr(tt.expr, "Shop")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref.String())
			assert.Equal(t, tt.shape, ShapeOf(ref))
		})
	}
}

func TestParseTypeExpr_Namespaces(t *testing.T) {
	ref, err := ParseTypeExpr("Shop.Domain.Order", "Shop")
	require.NoError(t, err)
	assert.Equal(t, "Shop.Domain", ref.Namespace)
	assert.Equal(t, "Shop.Domain.Order", ref.FullName())

	ref, err = ParseTypeExpr("Order", "Shop")
	require.NoError(t, err)
	assert.Empty(t, ref.Namespace)
	assert.Equal(t, "Shop", ref.Module)

	ref, err = ParseTypeExpr("string", "Shop")
	require.NoError(t, err)
	assert.Equal(t, SystemNamespace, ref.Namespace)
	assert.Equal(t, PlatformModule, ref.Module)
}

func TestParseTypeExpr_Errors(t *testing.T) {
	for _, expr := range []string{"", "List<", "List<int", "Dictionary<int,>", "1Order", "Shop..Order", "Order>", "Order!"} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseTypeExpr(expr, "Shop")
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrSource))
		})
	}
}

func TestIsSimple(t *testing.T) {
	tests := []struct {
		expr          string
		simple        bool
		genericSimple bool
	}{
		{"string", true, false},
		{"DateTime", true, false},
		{"int?", true, true},
		{"Order", false, false},
		{"OrderStatus?", false, false},
		{"List<int>", false, true},
		{"Dictionary<string, decimal>", false, true},
		{"Dictionary<string, Order>", false, false},
		{"Shop.String", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			ref, err := ParseTypeExpr(tt.expr, "Shop")
			require.NoError(t, err)
			assert.Equal(t, tt.simple, IsSimple(ref))
			assert.Equal(t, tt.genericSimple, IsGenericSimple(ref))
		})
	}
}
