package models

// Inventory types as stored on inventory items. An empty value is a product.
const (
	InventoryTypeProduct   = "product"
	InventoryTypeBox       = "box"
	InventoryTypePallet    = "pallet"
	InventoryTypeContainer = "container"
)

// InventoryItem represents an item in the user's inventory snapshot
type InventoryItem struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"userId,omitempty" db:"user_id"`
	ProductName   string    `json:"productName" db:"product_name"`
	SKU           string    `json:"sku,omitempty" db:"sku"`
	Quantity      int       `json:"quantity" db:"quantity"`
	Status        string    `json:"status" db:"status"`
	InventoryType string    `json:"inventoryType,omitempty" db:"inventory_type"`
	DateAdded     Timestamp `json:"dateAdded" db:"date_added"`
}

// InventoryRow is one row of the read-only inventory table
type InventoryRow struct {
	ID            string `json:"id"`
	ProductName   string `json:"productName"`
	SKU           string `json:"sku,omitempty"`
	Quantity      int    `json:"quantity"`
	InventoryType string `json:"inventoryType"`
	Status        string `json:"status"`
	StatusLabel   string `json:"statusLabel"`
	StatusBadge   string `json:"statusBadge"` // success, warning, danger or neutral
	DateAdded     string `json:"dateAdded"`   // Formatted, "N/A" when unknown
}

// InventoryReportData is passed to the inventory report template
type InventoryReportData struct {
	Title       string         `json:"title"`
	GeneratedAt string         `json:"generatedAt"`
	Rows        []InventoryRow `json:"rows"`
	TotalUnits  int            `json:"totalUnits"`
}

// PublishReportResponse is returned after uploading an inventory report
type PublishReportResponse struct {
	SpreadsheetFileID string `json:"spreadsheetFileId"`
	ImageFileID       string `json:"imageFileId,omitempty"`
	Rows              int    `json:"rows"`
}
