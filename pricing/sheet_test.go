package pricing

import (
	"testing"

	"fulfillment-portal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSheet(t *testing.T) {
	tables, err := LoadSheet("testdata/pricing.yaml")
	require.NoError(t, err)

	require.Len(t, tables.PrepRules, 2)
	assert.Nil(t, tables.PrepRules[1].MaxUnits)
	assert.Equal(t, 1.25, tables.PrepRules[1].Rate.Value)
	assert.Equal(t, 5.25, LatestPrice(tables.BoxForwarding))
	assert.Equal(t, 38.0, LatestPrice(tables.PalletForwarding))
	assert.Empty(t, tables.PalletExistingInventory)

	q := Quote{ShipmentType: models.ShipmentTypeProduct, Service: models.ServicePrepFBA, ProductType: models.ProductTypeStandard, Tables: tables}
	assert.Equal(t, models.LinePrice{UnitPrice: 2, TotalPrice: 61}, PriceLine(q, 10, 3))
}

func TestLoadSheet_Missing(t *testing.T) {
	_, err := LoadSheet("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestParseSheet_RejectsUnknownProductType(t *testing.T) {
	_, err := ParseSheet([]byte(`
prepRules:
  - id: bad
    service: FBM
    productType: Gigantic
    minUnits: 1
    rate: 1
`))
	assert.Error(t, err)
}
