package shipment

import (
	"encoding/json"
	"testing"
	"time"

	"fulfillment-portal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assembledAt = time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

func intRef(v int) *int { return &v }

func TestDeriveService(t *testing.T) {
	assert.Equal(t, models.ServiceBoxForwarding, DeriveService(models.ShipmentTypeBox, "", models.ServicePrepFBM))
	assert.Equal(t, models.ServicePalletForwarding, DeriveService(models.ShipmentTypePallet, models.PalletSubTypeForwarding, "FBM"))
	assert.Equal(t, models.ServicePalletExistingInventory, DeriveService(models.ShipmentTypePallet, models.PalletSubTypeExistingInventory, ""))
	assert.Equal(t, models.ServicePrepFBM, DeriveService(models.ShipmentTypeProduct, "", models.ServicePrepFBM))
}

func TestAssemble_BoxOmitsProductFields(t *testing.T) {
	form := models.ShipmentForm{
		ShipmentType:     models.ShipmentTypeBox,
		Service:          models.ServicePrepFBA,
		ProductType:      models.ProductTypeStandard,
		CustomDimensions: "",
		Shipments: []models.ShipmentLine{
			{ProductID: "b1", Quantity: 3, PackOf: 0, UnitPrice: 4.5, TotalPrice: 13.5, ProductName: "Carton", PricedFor: "box"},
		},
		Date: "2026-10-21",
	}

	record, err := Assemble(form, models.User{ID: "u1", Email: "ops@acme.test"}, "req-1", assembledAt)
	require.NoError(t, err)

	assert.Equal(t, models.ServiceBoxForwarding, record.Service)
	assert.Nil(t, record.ProductType)
	assert.Nil(t, record.PalletSubType)
	assert.Nil(t, record.CustomDimensions)
	assert.Nil(t, record.CompanyName)
	assert.Equal(t, []models.PersistedLine{{ProductID: "b1", Quantity: 3, PackOf: 1, UnitPrice: 4.5}}, record.Shipments)
	assert.Equal(t, models.ShipmentRequestStatusPending, record.Status)
}

func TestAssemble_AdditionalServices(t *testing.T) {
	form := validProductForm()
	form.BubbleWrapFeet = intRef(10)
	form.StickerRemovalItems = intRef(0)
	form.WarningLabels = intRef(2)

	record, err := Assemble(form, models.User{ID: "u1"}, "req-2", assembledAt)
	require.NoError(t, err)
	assert.Equal(t, []string{models.AdditionalServiceBubbleWrap, models.AdditionalServiceWarningLabels}, record.AdditionalServices)

	form.BubbleWrapFeet, form.WarningLabels = nil, nil
	record, err = Assemble(form, models.User{ID: "u1"}, "req-3", assembledAt)
	require.NoError(t, err)
	assert.Empty(t, record.AdditionalServices)
}

func TestAssemble_RejectsBadDate(t *testing.T) {
	form := validProductForm()
	form.Date = "tomorrow"

	_, err := Assemble(form, models.User{ID: "u1"}, "req-4", assembledAt)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestStripUndefined_RoundTrip(t *testing.T) {
	form := models.ShipmentForm{
		ShipmentType:     models.ShipmentTypeProduct,
		PalletSubType:    "",
		Service:          models.ServicePrepFBM,
		ProductType:      models.ProductTypeStandard,
		CustomDimensions: "",
		Shipments:        []models.ShipmentLine{{ProductID: "inv_1", Quantity: 10, PackOf: 3, UnitPrice: 2, TotalPrice: 61}},
		Date:             "2026-10-20",
	}
	record, err := Assemble(form, models.User{ID: "u1", Email: "ops@acme.test", CompanyName: "Acme"}, "req-5", assembledAt)
	require.NoError(t, err)

	doc, ok := StripUndefined(record.Document()).(map[string]interface{})
	require.True(t, ok)

	assert.NotContains(t, doc, "palletSubType")
	assert.NotContains(t, doc, "customDimensions")
	assert.NotContains(t, doc, "remarks")
	assert.NotContains(t, doc, "additionalServices")
	assert.Equal(t, "Acme", doc["companyName"])
	assert.Equal(t, models.ProductTypeStandard, doc["productType"])
	assert.IsType(t, time.Time{}, doc["date"])
	assert.IsType(t, time.Time{}, doc["createdAt"])

	lines, ok := doc["shipments"].([]interface{})
	require.True(t, ok)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]interface{})
	assert.NotContains(t, line, "totalPrice")
	assert.NotContains(t, line, "pricedFor")

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var parsed models.ShipmentRequestRecord
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, record.ID, parsed.ID)
	assert.Equal(t, record.UserID, parsed.UserID)
	assert.Equal(t, record.ShipmentType, parsed.ShipmentType)
	assert.Equal(t, record.Service, parsed.Service)
	assert.Equal(t, record.Shipments, parsed.Shipments)
	assert.Equal(t, record.Status, parsed.Status)
	assert.True(t, record.Date.Equal(parsed.Date))
	assert.True(t, record.CreatedAt.Equal(parsed.CreatedAt))
}

func TestStripUndefined_Nested(t *testing.T) {
	var missing *string
	present := "kept"
	input := map[string]interface{}{
		"a": nil,
		"b": missing,
		"c": &present,
		"d": []interface{}{nil, 1, map[string]interface{}{"x": nil, "y": "z"}},
		"e": models.TimestampFromSeconds(42),
	}

	got := StripUndefined(input).(map[string]interface{})
	assert.Equal(t, map[string]interface{}{
		"c": "kept",
		"d": []interface{}{1, map[string]interface{}{"y": "z"}},
		"e": models.TimestampFromSeconds(42),
	}, got)
}
