package utils

import (
	"strings"

	"fulfillment-portal/models"
)

// NormalizeShipmentType maps shipment type aliases to their canonical value
// Input is normalized to lowercase before mapping
// Returns the input lowercased when no alias matches
func NormalizeShipmentType(shipmentType string) string {
	typeLower := strings.ToLower(strings.TrimSpace(shipmentType))

	typeMap := map[string]string{
		"product":  models.ShipmentTypeProduct,
		"products": models.ShipmentTypeProduct,
		"prep":     models.ShipmentTypeProduct,
		"box":      models.ShipmentTypeBox,
		"boxes":    models.ShipmentTypeBox,
		"pallet":   models.ShipmentTypePallet,
		"pallets":  models.ShipmentTypePallet,
	}

	if value, exists := typeMap[typeLower]; exists {
		return value
	}
	return typeLower
}

// NormalizePalletSubType maps pallet sub-type aliases to their canonical value
func NormalizePalletSubType(subType string) string {
	subLower := strings.ToLower(strings.TrimSpace(subType))
	subLower = strings.NewReplacer("-", "_", " ", "_").Replace(subLower)

	subMap := map[string]string{
		"forwarding":         models.PalletSubTypeForwarding,
		"forward":            models.PalletSubTypeForwarding,
		"existing":           models.PalletSubTypeExistingInventory,
		"existing_inventory": models.PalletSubTypeExistingInventory,
		"inventory":          models.PalletSubTypeExistingInventory,
	}

	if value, exists := subMap[subLower]; exists {
		return value
	}
	return subLower
}

// NormalizeService maps prep service aliases (fba, wfs, tfs, fbm) to the stored service name
// Returns the trimmed input when no alias matches
func NormalizeService(service string) string {
	trimmed := strings.TrimSpace(service)

	serviceMap := map[string]string{
		"fba":         models.ServicePrepFBA,
		"wfs":         models.ServicePrepFBA,
		"tfs":         models.ServicePrepFBA,
		"fba/wfs/tfs": models.ServicePrepFBA,
		"fbm":         models.ServicePrepFBM,
	}

	if value, exists := serviceMap[strings.ToLower(trimmed)]; exists {
		return value
	}
	return trimmed
}

// NormalizeProductType maps product type names case-insensitively
func NormalizeProductType(productType string) string {
	trimmed := strings.TrimSpace(productType)

	productMap := map[string]string{
		"standard": models.ProductTypeStandard,
		"std":      models.ProductTypeStandard,
		"large":    models.ProductTypeLarge,
		"oversize": models.ProductTypeLarge,
		"custom":   models.ProductTypeCustom,
	}

	if value, exists := productMap[strings.ToLower(trimmed)]; exists {
		return value
	}
	return trimmed
}

// MapStatusToLabel maps inventory status codes to display labels
func MapStatusToLabel(status string) string {
	statusLower := strings.ToLower(strings.TrimSpace(status))

	labelMap := map[string]string{
		"in_stock":     "In Stock",
		"low_stock":    "Low Stock",
		"out_of_stock": "Out of Stock",
	}

	if label, exists := labelMap[statusLower]; exists {
		return label
	}
	if statusLower == "" {
		return "Unknown"
	}

	// Fall back to the code with underscores turned into spaces
	words := strings.Fields(strings.ReplaceAll(statusLower, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// MapStatusToBadge maps inventory status codes to badge classes
func MapStatusToBadge(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "in_stock":
		return "success"
	case "low_stock":
		return "warning"
	case "out_of_stock":
		return "danger"
	}
	return "neutral"
}
