package pricing

import (
	"sort"

	"fulfillment-portal/models"
)

// SelectLatest returns the most recently updated record, or nil for an empty list.
// Equal timestamps keep input order.
func SelectLatest(records []models.DatedPrice) *models.DatedPrice {
	if len(records) == 0 {
		return nil
	}
	sorted := make([]models.DatedPrice, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.Millis() > sorted[j].UpdatedAt.Millis()
	})
	latest := sorted[0]
	return &latest
}

// LatestPrice returns the authoritative price, or 0 when the latest record has no valid price
func LatestPrice(records []models.DatedPrice) float64 {
	latest := SelectLatest(records)
	if latest == nil || !latest.Price.Positive() {
		return 0
	}
	return latest.Price.Value
}
