package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Order", "Ordr", 1},
		{"Customer", "Costumer", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("order_id", "OrderID"), 0.001)
	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.001)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"unit_price", []string{"unit", "price"}},
		{"Shop.Order", []string{"Shop", "Order"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"Line2Total", []string{"Line2", "Total"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestCaseConversions(t *testing.T) {
	tests := []struct {
		in                   string
		pascal, camel, snake string
	}{
		{"OrderID", "OrderID", "orderID", "order_id"},
		{"unit_price", "UnitPrice", "unitPrice", "unit_price"},
		{"ID", "ID", "id", "id"},
		{"customerName", "CustomerName", "customerName", "customer_name"},
		{"", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.pascal, Pascal(tt.in))
			assert.Equal(t, tt.camel, Camel(tt.in))
			assert.Equal(t, tt.snake, Snake(tt.in))
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("UniqueId"))
	assert.True(t, IsIdentifier("_x9"))
	assert.False(t, IsIdentifier("9x"))
	assert.False(t, IsIdentifier("Unique Id"))
	assert.False(t, IsIdentifier("a.b"))
	assert.False(t, IsIdentifier(""))
}

func TestSuggest(t *testing.T) {
	known := []string{"Order", "OrderLine", "Customer", "Product", "Order"}

	assert.Equal(t, []string{"Order"}, Suggest("Ordr", known, 1))
	assert.Equal(t, []string{"Customer"}, Suggest("Costumer", known, 3))
	assert.Empty(t, Suggest("Warehouse", known, 3))

	// Deterministic and deduplicated.
	assert.Equal(t, Suggest("Ordr", known, 0), Suggest("Ordr", known, 0))
	assert.NotContains(t, Suggest("Ordr", known, 0)[1:], "Order")
}
