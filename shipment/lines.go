package shipment

import (
	"fulfillment-portal/models"
	"fulfillment-portal/pricing"
)

// ToggleLine adds or removes the line for productID.
// A newly selected product starts at quantity 1, pack of 1, priced under q.
// Selecting a present product or deselecting an absent one returns the lines unchanged.
func ToggleLine(lines []models.ShipmentLine, productID string, selected bool, q pricing.Quote) []models.ShipmentLine {
	index := indexOf(lines, productID)

	switch {
	case selected && index < 0:
		line := models.ShipmentLine{ProductID: productID, Quantity: 1, PackOf: 1}
		if !q.Tables.Loading {
			line, _ = pricing.ApplyLinePrice(line, pricing.PriceLine(q, line.Quantity, line.PackOf), q)
		}
		out := make([]models.ShipmentLine, 0, len(lines)+1)
		out = append(out, lines...)
		return append(out, line)

	case !selected && index >= 0:
		out := make([]models.ShipmentLine, 0, len(lines)-1)
		out = append(out, lines[:index]...)
		return append(out, lines[index+1:]...)
	}
	return lines
}

func indexOf(lines []models.ShipmentLine, productID string) int {
	for i, line := range lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

func isProductInventory(inventoryType string) bool {
	switch inventoryType {
	case models.InventoryTypeBox, models.InventoryTypePallet, models.InventoryTypeContainer:
		return false
	}
	return true
}

// SelectableItems filters the inventory snapshot down to the items that can be
// shipped under the given shipment type.
func SelectableItems(items []models.InventoryItem, shipmentType, palletSubType string) []models.InventoryItem {
	keep := func(models.InventoryItem) bool { return false }

	switch shipmentType {
	case models.ShipmentTypeBox:
		keep = func(item models.InventoryItem) bool { return item.InventoryType == models.InventoryTypeBox }
	case models.ShipmentTypePallet:
		switch palletSubType {
		case models.PalletSubTypeForwarding:
			keep = func(item models.InventoryItem) bool { return item.InventoryType == models.InventoryTypePallet }
		case models.PalletSubTypeExistingInventory:
			keep = func(item models.InventoryItem) bool { return isProductInventory(item.InventoryType) }
		}
	case models.ShipmentTypeProduct:
		keep = func(item models.InventoryItem) bool { return isProductInventory(item.InventoryType) }
	}

	selectable := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			selectable = append(selectable, item)
		}
	}
	return selectable
}
