package service

import (
	"fmt"

	"fulfillment-portal/models"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const inventorySheet = "Inventory"

var inventoryHeader = []interface{}{"Product", "SKU", "Type", "Quantity", "Status", "Date Added"}

var border = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

// ExportInventoryXLSX writes the inventory rows to a spreadsheet
func ExportInventoryXLSX(data models.InventoryReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Errorf("close spreadsheet failed: %v", err)
		}
	}()
	f.SetSheetName("Sheet1", inventorySheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Border: border,
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return nil, fmt.Errorf("failed to create cell style: %w", err)
	}

	if err := f.SetSheetRow(inventorySheet, "A1", &inventoryHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(inventorySheet, "A1", "F1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range data.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{row.ProductName, row.SKU, row.InventoryType, row.Quantity, row.StatusLabel, row.DateAdded}
		if err := f.SetSheetRow(inventorySheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	last := len(data.Rows) + 1
	if len(data.Rows) > 0 {
		end, _ := excelize.CoordinatesToCellName(len(inventoryHeader), last)
		if err := f.SetCellStyle(inventorySheet, "A2", end, cellStyle); err != nil {
			return nil, fmt.Errorf("failed to style rows: %w", err)
		}
	}

	totalLabel, _ := excelize.CoordinatesToCellName(3, last+1)
	totalValue, _ := excelize.CoordinatesToCellName(4, last+1)
	if err := f.SetCellStr(inventorySheet, totalLabel, "Total units"); err != nil {
		return nil, err
	}
	if err := f.SetCellInt(inventorySheet, totalValue, data.TotalUnits); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(inventorySheet, "A", "A", 36); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(inventorySheet, "B", "F", 16); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	log.Printf("📊 ExportInventoryXLSX: wrote %d rows (%d bytes)", len(data.Rows), buf.Len())
	return buf.Bytes(), nil
}
