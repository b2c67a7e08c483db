package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-generator/internal/errors"
)

const billingYAML = `
module: Billing
namespace: Billing
types:
  - name: Invoice
    properties:
      - { name: Number, type: string }
      - { name: Lines, type: "InvoiceLine[]" }
  - name: InvoiceLine
    properties:
      - { name: Amount, type: decimal }
      - { name: Sku, type: string }
`

func TestLoadSources_DescriptorFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "billing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(billingYAML), 0o644))

	set, err := LoadSources(context.Background(), []string{path}, nil)
	require.NoError(t, err)
	require.Len(t, set.Sources(), 1)
	assert.Equal(t, 2, set.Len())

	res, err := NewBuilder(set, Options{Roots: []string{"Invoice"}}, nil).Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"Invoice", "InvoiceLine"}, res.Mappings.Names())
}

func TestLoadSources_MissingFile(t *testing.T) {
	_, err := LoadSources(context.Background(), []string{filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSource))
}
