package pricing

import (
	"math"
	"testing"

	"fulfillment-portal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productQuote(service, productType string, rules []models.PricingRule) Quote {
	return Quote{
		ShipmentType: models.ShipmentTypeProduct,
		Service:      service,
		ProductType:  productType,
		Tables:       Tables{PrepRules: rules},
	}
}

func flatTables() Tables {
	return Tables{
		BoxForwarding: []models.DatedPrice{
			datedPrice("box-old", 9, models.TimestampFromSeconds(100)),
			datedPrice("box-new", 4.5, models.TimestampFromSeconds(200)),
		},
		PalletForwarding:        []models.DatedPrice{datedPrice("pf", 35, models.TimestampFromSeconds(100))},
		PalletExistingInventory: []models.DatedPrice{datedPrice("pe", 27.333, models.TimestampFromSeconds(100))},
	}
}

func TestPriceLine_PackSurcharge(t *testing.T) {
	rules := []models.PricingRule{prepRule("r", models.ServicePrepFBA, models.ProductTypeStandard, 1, nil, 2.00, 0.50)}
	q := productQuote(models.ServicePrepFBA, models.ProductTypeStandard, rules)

	got := PriceLine(q, 10, 3)
	assert.Equal(t, 2.00, got.UnitPrice)
	assert.Equal(t, 61.00, got.TotalPrice)
}

func TestPriceLine_PackOfOneHasNoSurcharge(t *testing.T) {
	for _, surcharge := range []float64{0, 0.50, 7.25} {
		rules := []models.PricingRule{prepRule("r", models.ServicePrepFBA, models.ProductTypeStandard, 1, nil, 2.00, surcharge)}
		q := productQuote(models.ServicePrepFBA, models.ProductTypeStandard, rules)

		got := PriceLine(q, 5, 1)
		assert.Equal(t, 10.00, got.TotalPrice, "surcharge %v", surcharge)
	}
}

func TestPriceLine_PackOfZeroDefaultsToOne(t *testing.T) {
	rules := []models.PricingRule{prepRule("r", models.ServicePrepFBM, models.ProductTypeLarge, 1, nil, 3.00, 1.00)}
	q := productQuote(models.ServicePrepFBM, models.ProductTypeLarge, rules)

	assert.Equal(t, models.LinePrice{UnitPrice: 3, TotalPrice: 12}, PriceLine(q, 4, 0))
}

func TestPriceLine_OverflowingUnitsHaveNoPrice(t *testing.T) {
	rules := []models.PricingRule{prepRule("open", models.ServicePrepFBA, models.ProductTypeStandard, 1, nil, 0.50, 0)}
	q := productQuote(models.ServicePrepFBA, models.ProductTypeStandard, rules)

	assert.Equal(t, models.LinePrice{}, PriceLine(q, 1<<62, 4))
	assert.Equal(t, models.LinePrice{}, PriceLine(q, math.MaxInt, 2))
}

func TestTotalUnits(t *testing.T) {
	units, ok := TotalUnits(10, 3)
	assert.True(t, ok)
	assert.Equal(t, 30, units)

	units, ok = TotalUnits(7, 0)
	assert.True(t, ok)
	assert.Equal(t, 7, units)

	_, ok = TotalUnits(1<<62, 4)
	assert.False(t, ok)

	units, ok = TotalUnits(math.MaxInt, 1)
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt, units)
}

func TestPriceLine_BracketUsesTotalUnits(t *testing.T) {
	q := productQuote(models.ServicePrepFBA, models.ProductTypeStandard, sampleRules())

	// 40 x 3 = 120 units falls in the open-ended 1.25 bracket
	got := PriceLine(q, 40, 3)
	assert.Equal(t, 1.25, got.UnitPrice)
	assert.Equal(t, 150.50, got.TotalPrice)
}

func TestPriceLine_CustomProduct(t *testing.T) {
	rules := []models.PricingRule{prepRule("r", models.ServicePrepFBA, models.ProductTypeCustom, 1, nil, 9.99, 3)}

	for _, qty := range []int{1, 7, 250} {
		q := productQuote(models.ServicePrepFBA, models.ProductTypeCustom, rules)
		got := PriceLine(q, qty, 4)
		assert.Equal(t, 1.0, got.UnitPrice)
		assert.Equal(t, float64(qty), got.TotalPrice)
	}
}

func TestPriceLine_NoMatchingRule(t *testing.T) {
	q := productQuote(models.ServicePrepFBM, models.ProductTypeLarge, sampleRules())
	assert.Equal(t, models.LinePrice{}, PriceLine(q, 3, 1))

	q = productQuote(models.ServicePrepFBA, models.ProductTypeStandard, sampleRules())
	assert.Equal(t, models.LinePrice{}, PriceLine(q, 0, 2))
}

func TestPriceLine_FlatPricing(t *testing.T) {
	tests := []struct {
		name          string
		shipmentType  string
		palletSubType string
		quantity      int
		want          models.LinePrice
	}{
		{"box uses latest price", models.ShipmentTypeBox, "", 3, models.LinePrice{UnitPrice: 4.5, TotalPrice: 13.5}},
		{"pallet forwarding", models.ShipmentTypePallet, models.PalletSubTypeForwarding, 2, models.LinePrice{UnitPrice: 35, TotalPrice: 70}},
		{"pallet existing inventory rounds", models.ShipmentTypePallet, models.PalletSubTypeExistingInventory, 3, models.LinePrice{UnitPrice: 27.33, TotalPrice: 82}},
		{"pallet without sub-type", models.ShipmentTypePallet, "", 3, models.LinePrice{}},
		{"zero quantity keeps unit price", models.ShipmentTypeBox, "", 0, models.LinePrice{UnitPrice: 4.5}},
		{"unknown shipment type", "freight", "", 3, models.LinePrice{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Quote{ShipmentType: tt.shipmentType, PalletSubType: tt.palletSubType, Tables: flatTables()}
			assert.Equal(t, tt.want, PriceLine(q, tt.quantity, 5))
		})
	}
}

func TestPriceLine_FlatPricingMissing(t *testing.T) {
	q := Quote{ShipmentType: models.ShipmentTypePallet, PalletSubType: models.PalletSubTypeForwarding}
	assert.Equal(t, models.LinePrice{}, PriceLine(q, 4, 1))
}

func TestReprice_Idempotent(t *testing.T) {
	rules := []models.PricingRule{prepRule("r", models.ServicePrepFBA, models.ProductTypeStandard, 1, nil, 2.00, 0.50)}
	q := productQuote(models.ServicePrepFBA, models.ProductTypeStandard, rules)
	lines := []models.ShipmentLine{{ProductID: "a", Quantity: 10, PackOf: 3}, {ProductID: "b", Quantity: 5, PackOf: 1}}

	first, changed := Reprice(lines, q)
	require.True(t, changed)
	assert.Equal(t, 61.00, first[0].TotalPrice)
	assert.Equal(t, 10.00, first[1].TotalPrice)

	second, changed := Reprice(first, q)
	assert.False(t, changed)
	assert.Equal(t, first, second)
}

func TestReprice_SkipsWhileLoading(t *testing.T) {
	q := Quote{ShipmentType: models.ShipmentTypeBox, Tables: Tables{Loading: true}}
	lines := []models.ShipmentLine{{ProductID: "a", Quantity: 2, UnitPrice: 4.5, TotalPrice: 9, PricedFor: "box"}}

	got, changed := Reprice(lines, q)
	assert.False(t, changed)
	assert.Equal(t, lines, got)
}

func TestReprice_BoxToPalletClearsStalePrice(t *testing.T) {
	boxQuote := Quote{ShipmentType: models.ShipmentTypeBox, Tables: flatTables()}
	lines, _ := Reprice([]models.ShipmentLine{{ProductID: "a", Quantity: 2, PackOf: 1}}, boxQuote)
	require.Equal(t, 9.0, lines[0].TotalPrice)

	palletQuote := Quote{ShipmentType: models.ShipmentTypePallet, PalletSubType: models.PalletSubTypeForwarding}
	got, changed := Reprice(lines, palletQuote)
	assert.True(t, changed)
	assert.Zero(t, got[0].UnitPrice)
	assert.Zero(t, got[0].TotalPrice)
}

func TestReprice_ProductZeroKeepsPriceInSameContext(t *testing.T) {
	q := productQuote(models.ServicePrepFBM, models.ProductTypeStandard, sampleRules())
	lines, _ := Reprice([]models.ShipmentLine{{ProductID: "a", Quantity: 10, PackOf: 1}}, q)
	require.Equal(t, 3.10, lines[0].UnitPrice)

	// 60 units is outside every FBM bracket: pricing not available, not free
	lines[0].Quantity = 60
	got, changed := Reprice(lines, q)
	assert.False(t, changed)
	assert.Equal(t, 3.10, got[0].UnitPrice)
}

func TestReprice_ProductKeepsManualEntry(t *testing.T) {
	q := productQuote(models.ServicePrepFBM, models.ProductTypeLarge, nil)
	lines := []models.ShipmentLine{{ProductID: "a", Quantity: 3, PackOf: 1, UnitPrice: 6, TotalPrice: 18, PricedFor: q.ContextKey()}}

	got, changed := Reprice(lines, q)
	assert.False(t, changed)
	assert.Equal(t, lines, got)
}

func TestReprice_ProductClearsPriceWithoutContext(t *testing.T) {
	q := productQuote(models.ServicePrepFBM, models.ProductTypeLarge, nil)
	lines := []models.ShipmentLine{{ProductID: "a", Quantity: 2, PackOf: 1, UnitPrice: 5, TotalPrice: 10}}

	got, changed := Reprice(lines, q)
	assert.True(t, changed)
	assert.Zero(t, got[0].UnitPrice)
	assert.Zero(t, got[0].TotalPrice)
	assert.Equal(t, q.ContextKey(), got[0].PricedFor)
}

func TestReprice_ProductContextSwitchClears(t *testing.T) {
	boxQuote := Quote{ShipmentType: models.ShipmentTypeBox, Tables: flatTables()}
	lines, _ := Reprice([]models.ShipmentLine{{ProductID: "a", Quantity: 2, PackOf: 1}}, boxQuote)
	require.Equal(t, 4.5, lines[0].UnitPrice)

	productQ := productQuote(models.ServicePrepFBM, models.ProductTypeLarge, nil)
	got, changed := Reprice(lines, productQ)
	assert.True(t, changed)
	assert.Zero(t, got[0].UnitPrice)
	assert.Zero(t, got[0].TotalPrice)
}

func TestReprice_ConvergesRegardlessOfPassOrder(t *testing.T) {
	tables := flatTables()
	tables.PrepRules = sampleRules()
	lines := []models.ShipmentLine{{ProductID: "a", Quantity: 4, PackOf: 2}}

	final := Quote{ShipmentType: models.ShipmentTypePallet, PalletSubType: models.PalletSubTypeExistingInventory, Tables: tables}
	intermediate := Quote{ShipmentType: models.ShipmentTypeBox, Tables: tables}

	viaIntermediate, _ := Reprice(lines, intermediate)
	viaIntermediate, _ = Reprice(viaIntermediate, final)
	viaIntermediate, _ = Reprice(viaIntermediate, final)

	direct, _ := Reprice(lines, final)
	assert.Equal(t, direct, viaIntermediate)
	assert.Equal(t, PriceLine(final, 4, 2), models.LinePrice{UnitPrice: direct[0].UnitPrice, TotalPrice: direct[0].TotalPrice})
}

func TestTotal(t *testing.T) {
	lines := []models.ShipmentLine{{TotalPrice: 0.1}, {TotalPrice: 0.2}, {TotalPrice: 61}}
	assert.Equal(t, 61.3, Total(lines))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, 10.0, Round2(9.999))
}
