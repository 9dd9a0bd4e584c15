package models

// PricingRule is a prep pricing tier for one service/product type and unit bracket
type PricingRule struct {
	ID            string    `json:"id" db:"id" yaml:"id"`
	Service       string    `json:"service" db:"service" yaml:"service"`
	ProductType   string    `json:"productType" db:"product_type" yaml:"productType"`
	MinUnits      int       `json:"minUnits" db:"min_units" yaml:"minUnits"`         // Inclusive lower bound
	MaxUnits      *int      `json:"maxUnits,omitempty" db:"max_units" yaml:"maxUnits"` // Inclusive upper bound, nil or 0 means open-ended
	Rate          FlexFloat `json:"rate" db:"rate" yaml:"rate"`
	PackSurcharge FlexFloat `json:"packSurcharge" db:"pack_surcharge" yaml:"packSurcharge"` // Charged per pack beyond the first
	UpdatedAt     Timestamp `json:"updatedAt" db:"updated_at" yaml:"updatedAt"`
}

// DatedPrice is a box-forwarding, pallet-forwarding or pallet-existing-inventory price record
type DatedPrice struct {
	ID        string    `json:"id" db:"id" yaml:"id"`
	Price     FlexFloat `json:"price" db:"price" yaml:"price"`
	UpdatedAt Timestamp `json:"updatedAt" db:"updated_at" yaml:"updatedAt"`
}

// LinePrice is the derived pricing for one shipment line
type LinePrice struct {
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// PricingTablesResponse is returned by GET /api/pricing
type PricingTablesResponse struct {
	PrepRules               []PricingRule `json:"prepRules"`
	BoxForwarding           []DatedPrice  `json:"boxForwarding"`
	PalletForwarding        []DatedPrice  `json:"palletForwarding"`
	PalletExistingInventory []DatedPrice  `json:"palletExistingInventory"`
}
