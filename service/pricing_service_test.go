package service

import (
	"context"
	"testing"

	"fulfillment-portal/models"
	"fulfillment-portal/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maxUnits(v int) *int { return &v }

func pricingFixture() *fakePricingRepo {
	return &fakePricingRepo{
		rules: []models.PricingRule{{
			ID:            "std",
			Service:       models.ServicePrepFBA,
			ProductType:   models.ProductTypeStandard,
			MinUnits:      1,
			MaxUnits:      maxUnits(100),
			Rate:          models.NewFlexFloat(2),
			PackSurcharge: models.NewFlexFloat(0.5),
		}},
		box: []models.DatedPrice{
			{ID: "old", Price: models.NewFlexFloat(4), UpdatedAt: models.TimestampFromSeconds(100)},
			{ID: "new", Price: models.NewFlexFloat(5.25), UpdatedAt: models.TimestampFromSeconds(200)},
		},
	}
}

func TestPricingService_LoadTables(t *testing.T) {
	svc := NewPricingService(pricingFixture())

	tables, err := svc.LoadTables(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, tables.Loading)
	assert.Len(t, tables.PrepRules, 1)
	assert.Len(t, tables.BoxForwarding, 2)
}

func TestPricingService_LoadTablesFailsAsAWhole(t *testing.T) {
	repo := pricingFixture()
	repo.err = errStoreDown
	svc := NewPricingService(repo)

	tables, err := svc.LoadTables(context.Background(), "u1")
	assert.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, tables.PrepRules)
	assert.Empty(t, tables.BoxForwarding)
}

func TestPricingService_TablesNeverNull(t *testing.T) {
	svc := NewPricingService(&fakePricingRepo{})

	resp, err := svc.Tables(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, resp.PrepRules)
	assert.NotNil(t, resp.BoxForwarding)
	assert.NotNil(t, resp.PalletForwarding)
	assert.NotNil(t, resp.PalletExistingInventory)
}

func TestPricingService_QuoteProduct(t *testing.T) {
	svc := NewPricingService(pricingFixture())

	resp, err := svc.Quote(context.Background(), "u1", models.QuoteRequest{
		ShipmentType: models.ShipmentTypeProduct,
		Service:      models.ServicePrepFBA,
		ProductType:  models.ProductTypeStandard,
		Lines:        []models.ShipmentLine{{ProductID: "inv_1", Quantity: 10, PackOf: 3}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Changed)
	assert.Equal(t, 2.0, resp.Lines[0].UnitPrice)
	assert.Equal(t, 61.0, resp.Lines[0].TotalPrice)
	assert.Equal(t, 61.0, resp.Total)

	again, err := svc.Quote(context.Background(), "u1", models.QuoteRequest{
		ShipmentType: models.ShipmentTypeProduct,
		Service:      models.ServicePrepFBA,
		ProductType:  models.ProductTypeStandard,
		Lines:        resp.Lines,
	})
	require.NoError(t, err)
	assert.False(t, again.Changed)
}

func TestPricingService_QuoteBoxUsesLatestPrice(t *testing.T) {
	svc := NewPricingService(pricingFixture())

	resp, err := svc.Quote(context.Background(), "u1", models.QuoteRequest{
		ShipmentType: models.ShipmentTypeBox,
		Lines:        []models.ShipmentLine{{ProductID: "b1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 5.25, resp.Lines[0].UnitPrice)
	assert.Equal(t, 10.5, resp.Lines[0].TotalPrice)
}

func TestPricingService_QuoteEmptyLines(t *testing.T) {
	svc := NewPricingService(pricingFixture())

	resp, err := svc.Quote(context.Background(), "u1", models.QuoteRequest{ShipmentType: models.ShipmentTypeBox})
	require.NoError(t, err)
	assert.NotNil(t, resp.Lines)
	assert.Empty(t, resp.Lines)
	assert.Zero(t, resp.Total)
}

func TestPricingService_ToggleLine(t *testing.T) {
	svc := NewPricingService(pricingFixture())
	req := models.ToggleLineRequest{
		QuoteRequest: models.QuoteRequest{ShipmentType: models.ShipmentTypeBox},
		ProductID:    "b1",
		Selected:     true,
	}

	resp, err := svc.ToggleLine(context.Background(), "u1", req)
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Changed)
	assert.Equal(t, 5.25, resp.Lines[0].TotalPrice)

	req.Lines = resp.Lines
	req.Selected = false
	resp, err = svc.ToggleLine(context.Background(), "u1", req)
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)

	_, err = svc.ToggleLine(context.Background(), "u1", models.ToggleLineRequest{})
	assert.ErrorIs(t, err, shipment.ErrInvalidRequest)
}
