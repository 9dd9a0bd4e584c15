package shipment

import (
	"fmt"
	"math"

	"fulfillment-portal/models"
	"fulfillment-portal/pricing"
)

func unitNoun(shipmentType string) string {
	switch shipmentType {
	case models.ShipmentTypeBox:
		return "boxes"
	case models.ShipmentTypePallet:
		return "pallets"
	}
	return "units"
}

// RequiredUnits is the stock a line consumes. Pack size only applies to product shipments.
// A count too large for an int saturates at math.MaxInt so it never fits in stock.
func RequiredUnits(line models.ShipmentLine, shipmentType string) int {
	packOf := line.PackOf
	if shipmentType != models.ShipmentTypeProduct {
		packOf = 1
	}
	units, ok := pricing.TotalUnits(line.Quantity, packOf)
	if !ok {
		return math.MaxInt
	}
	return units
}

// ValidateStock checks every line against the inventory snapshot and returns one
// error per line that exceeds the available quantity. Lines whose product is not in
// the snapshot are skipped.
func ValidateStock(lines []models.ShipmentLine, inventory []models.InventoryItem, shipmentType string) []ValidationError {
	byID := make(map[string]models.InventoryItem, len(inventory))
	for _, item := range inventory {
		byID[item.ID] = item
	}

	noun := unitNoun(shipmentType)
	var errs []ValidationError
	for _, line := range lines {
		item, ok := byID[line.ProductID]
		if !ok {
			continue
		}

		required := RequiredUnits(line, shipmentType)
		if required <= item.Quantity {
			continue
		}

		errs = append(errs, ValidationError{
			ProductID:   line.ProductID,
			ProductName: item.ProductName,
			Requested:   required,
			Available:   item.Quantity,
			Unit:        noun,
			Message: fmt.Sprintf("Insufficient stock for %s: requested %d %s, only %d available",
				item.ProductName, required, noun, item.Quantity),
		})
	}
	return errs
}
