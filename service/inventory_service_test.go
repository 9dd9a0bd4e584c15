package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"fulfillment-portal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func inventoryFixture() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: []models.InventoryItem{
		{ID: "p1", ProductName: "Blue Mug", SKU: "MUG-1", Quantity: 40, Status: "in_stock", DateAdded: models.Timestamp{ISO: "2026-01-05T10:00:00Z"}},
		{ID: "b1", ProductName: "Carton", Quantity: 3, Status: "low_stock", InventoryType: models.InventoryTypeBox, DateAdded: models.TimestampFromSeconds(1767225600)},
		{ID: "p2", ProductName: "Red <Mug>", Quantity: 0, Status: "out_of_stock", DateAdded: models.Timestamp{ISO: "yesterday"}},
	}}
}

func TestFormatDateAdded(t *testing.T) {
	assert.Equal(t, "Jan 5, 2026", FormatDateAdded(models.Timestamp{ISO: "2026-01-05T10:00:00Z"}))
	assert.Equal(t, "Jan 1, 2026", FormatDateAdded(models.TimestampFromSeconds(1767225600)))
	assert.Equal(t, "N/A", FormatDateAdded(models.Timestamp{ISO: "not a date"}))
	assert.Equal(t, "N/A", FormatDateAdded(models.Timestamp{}))
}

func TestInventoryService_Rows(t *testing.T) {
	svc := NewInventoryService(inventoryFixture())

	rows, err := svc.Rows(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, models.InventoryTypeProduct, rows[0].InventoryType)
	assert.Equal(t, "In Stock", rows[0].StatusLabel)
	assert.Equal(t, "success", rows[0].StatusBadge)
	assert.Equal(t, "Jan 5, 2026", rows[0].DateAdded)

	assert.Equal(t, models.InventoryTypeBox, rows[1].InventoryType)
	assert.Equal(t, "warning", rows[1].StatusBadge)

	assert.Equal(t, "danger", rows[2].StatusBadge)
	assert.Equal(t, "N/A", rows[2].DateAdded)
}

func TestInventoryService_RowsError(t *testing.T) {
	svc := NewInventoryService(&fakeInventoryRepo{err: errStoreDown})

	_, err := svc.Rows(context.Background(), "u1")
	assert.ErrorIs(t, err, errStoreDown)
}

func TestInventoryService_Selectable(t *testing.T) {
	svc := NewInventoryService(inventoryFixture())

	items, err := svc.Selectable(context.Background(), "u1", models.ShipmentTypeBox, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b1", items[0].ID)

	items, err = svc.Selectable(context.Background(), "u1", models.ShipmentTypeProduct, "")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func reportData() models.InventoryReportData {
	rows := BuildInventoryRows(inventoryFixture().items)
	return models.InventoryReportData{
		Title:       "Inventory for Acme",
		GeneratedAt: "Oct 19, 2026 09:00 UTC",
		Rows:        rows,
		TotalUnits:  43,
	}
}

func TestExportInventoryXLSX(t *testing.T) {
	data, err := ExportInventoryXLSX(reportData())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(inventorySheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Product", "SKU", "Type", "Quantity", "Status", "Date Added"}, rows[0])
	assert.Equal(t, []string{"Blue Mug", "MUG-1", "product", "40", "In Stock", "Jan 5, 2026"}, rows[1])

	total, err := f.GetCellValue(inventorySheet, "D5")
	require.NoError(t, err)
	assert.Equal(t, "43", total)
}

func TestRenderInventoryHTML(t *testing.T) {
	html, err := RenderInventoryHTML(reportData())
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Inventory for Acme</title>")
	assert.Contains(t, html, `badge-success`)
	assert.Contains(t, html, "Red &lt;Mug&gt;")
	assert.Contains(t, html, "N/A")
	assert.Equal(t, 4, strings.Count(html, `<td class="qty">`))
}

func TestRenderInventoryHTML_Empty(t *testing.T) {
	html, err := RenderInventoryHTML(models.InventoryReportData{Title: "Empty"})
	require.NoError(t, err)
	assert.Contains(t, html, "No inventory items")
}
