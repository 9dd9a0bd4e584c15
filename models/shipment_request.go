package models

import "time"

// Shipment types
const (
	ShipmentTypeProduct = "product"
	ShipmentTypeBox     = "box"
	ShipmentTypePallet  = "pallet"
)

// Pallet sub-types
const (
	PalletSubTypeExistingInventory = "existing_inventory"
	PalletSubTypeForwarding        = "forwarding"
)

// Services. The two prep services are the only ones priced by prep rules.
const (
	ServicePrepFBA                 = "FBA/WFS/TFS"
	ServicePrepFBM                 = "FBM"
	ServiceBoxForwarding           = "Box Forwarding"
	ServicePalletForwarding        = "Pallet Forwarding"
	ServicePalletExistingInventory = "Pallet Existing Inventory"
)

// Product types
const (
	ProductTypeStandard = "Standard"
	ProductTypeLarge    = "Large"
	ProductTypeCustom   = "Custom"
)

// Additional services requested on a shipment
const (
	AdditionalServiceBubbleWrap     = "bubble_wrap"
	AdditionalServiceStickerRemoval = "sticker_removal"
	AdditionalServiceWarningLabels  = "warning_labels"
)

// ShipmentRequestStatusPending is the status of a newly created request awaiting review
const ShipmentRequestStatusPending = "pending"

// ShipmentLine is one selected inventory item in the shipment form
type ShipmentLine struct {
	ProductID  string  `json:"productId" validate:"required"`
	Quantity   int     `json:"quantity" validate:"gt=0"`
	PackOf     int     `json:"packOf,omitempty" validate:"gte=0"`
	UnitPrice  float64 `json:"unitPrice" validate:"gte=0"`
	TotalPrice float64 `json:"totalPrice" validate:"gte=0"`
	// UI-only fields, never persisted
	ProductName string `json:"productName,omitempty"`
	PricedFor   string `json:"pricedFor,omitempty"` // Pricing context the stored price was derived under
}

// ShipmentForm is the shipment form state as submitted by the portal
// Example: {"shipmentType": "product", "service": "FBM", "productType": "Standard",
// "shipments": [{"productId": "inv_1", "quantity": 10, "packOf": 3, "unitPrice": 2}],
// "date": "2026-10-20", "bubbleWrapFeet": 10}
type ShipmentForm struct {
	ShipmentType        string         `json:"shipmentType" validate:"required,oneof=product box pallet"`
	PalletSubType       string         `json:"palletSubType,omitempty" validate:"omitempty,oneof=existing_inventory forwarding"`
	Service             string         `json:"service,omitempty"`
	ProductType         string         `json:"productType,omitempty" validate:"omitempty,oneof=Standard Large Custom"`
	CustomDimensions    string         `json:"customDimensions,omitempty"`
	Shipments           []ShipmentLine `json:"shipments" validate:"min=1,dive"`
	Date                string         `json:"date" validate:"required"`
	Remarks             string         `json:"remarks,omitempty"`
	BubbleWrapFeet      *int           `json:"bubbleWrapFeet,omitempty"`
	StickerRemovalItems *int           `json:"stickerRemovalItems,omitempty"`
	WarningLabels       *int           `json:"warningLabels,omitempty"`
}

// User is the authenticated portal user submitting a request
type User struct {
	ID          string `json:"id" db:"id"`
	Email       string `json:"email" db:"email"`
	CompanyName string `json:"companyName" db:"company_name"`
}

// PersistedLine is a shipment line as stored on the request record
type PersistedLine struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	PackOf    int     `json:"packOf"`
	UnitPrice float64 `json:"unitPrice"`
}

// ShipmentRequestRecord is the created shipment request handed to the review workflow.
// Optional fields are pointers so that absent values are omitted, never written as null.
type ShipmentRequestRecord struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	UserEmail          *string         `json:"userEmail,omitempty"`
	CompanyName        *string         `json:"companyName,omitempty"`
	ShipmentType       string          `json:"shipmentType"`
	PalletSubType      *string         `json:"palletSubType,omitempty"`
	Service            string          `json:"service"`
	ProductType        *string         `json:"productType,omitempty"`
	CustomDimensions   *string         `json:"customDimensions,omitempty"`
	Shipments          []PersistedLine `json:"shipments"`
	Date               time.Time       `json:"date"`
	Remarks            *string         `json:"remarks,omitempty"`
	AdditionalServices []string        `json:"additionalServices,omitempty"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// Document returns the record as a nested document ready for the store.
// Absent optional values are left nil here and stripped by the caller.
func (r *ShipmentRequestRecord) Document() map[string]interface{} {
	lines := make([]interface{}, 0, len(r.Shipments))
	for _, line := range r.Shipments {
		lines = append(lines, map[string]interface{}{
			"productId": line.ProductID,
			"quantity":  line.Quantity,
			"packOf":    line.PackOf,
			"unitPrice": line.UnitPrice,
		})
	}

	var services interface{}
	if len(r.AdditionalServices) > 0 {
		services = r.AdditionalServices
	}

	return map[string]interface{}{
		"id":                 r.ID,
		"userId":             r.UserID,
		"userEmail":          r.UserEmail,
		"companyName":        r.CompanyName,
		"shipmentType":       r.ShipmentType,
		"palletSubType":      r.PalletSubType,
		"service":            r.Service,
		"productType":        r.ProductType,
		"customDimensions":   r.CustomDimensions,
		"shipments":          lines,
		"date":               r.Date,
		"remarks":            r.Remarks,
		"additionalServices": services,
		"status":             r.Status,
		"createdAt":          r.CreatedAt,
	}
}

// QuoteRequest is the body of POST /api/shipments/quote
type QuoteRequest struct {
	ShipmentType  string         `json:"shipmentType"`
	PalletSubType string         `json:"palletSubType,omitempty"`
	Service       string         `json:"service,omitempty"`
	ProductType   string         `json:"productType,omitempty"`
	Lines         []ShipmentLine `json:"lines"`
}

// QuoteResponse returns repriced lines and whether anything changed
type QuoteResponse struct {
	Lines   []ShipmentLine `json:"lines"`
	Changed bool           `json:"changed"`
	Total   float64        `json:"total"`
}

// ToggleLineRequest is the body of POST /api/shipments/lines/toggle
type ToggleLineRequest struct {
	QuoteRequest
	ProductID string `json:"productId"`
	Selected  bool   `json:"selected"`
}
