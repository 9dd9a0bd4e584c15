package pricing

import (
	"math"

	"fulfillment-portal/models"

	"github.com/shopspring/decimal"
)

// Tables holds the current user's four pricing collections.
// Loading is true while any collection is still being fetched.
type Tables struct {
	PrepRules               []models.PricingRule `yaml:"prepRules"`
	BoxForwarding           []models.DatedPrice  `yaml:"boxForwarding"`
	PalletForwarding        []models.DatedPrice  `yaml:"palletForwarding"`
	PalletExistingInventory []models.DatedPrice  `yaml:"palletExistingInventory"`
	Loading                 bool                 `yaml:"-"`
}

// Quote is the form context a line is priced under
type Quote struct {
	ShipmentType  string
	PalletSubType string
	Service       string
	ProductType   string
	Tables        Tables
}

// ContextKey identifies the pricing context so a line can tell whether its
// stored price was derived under the same shipment type, service and product type.
func (q Quote) ContextKey() string {
	switch q.ShipmentType {
	case models.ShipmentTypeProduct:
		return q.ShipmentType + "|" + q.Service + "|" + q.ProductType
	case models.ShipmentTypePallet:
		return q.ShipmentType + "|" + q.PalletSubType
	}
	return q.ShipmentType
}

func (q Quote) isRulePricedProduct() bool {
	return q.ShipmentType == models.ShipmentTypeProduct && q.ProductType != models.ProductTypeCustom
}

// flatPrice prices a box or pallet line at a per-unit price
func flatPrice(price float64, quantity int) models.LinePrice {
	if price <= 0 {
		return models.LinePrice{}
	}
	unit := decimal.NewFromFloat(price)
	line := models.LinePrice{UnitPrice: round2(unit)}
	if quantity > 0 {
		line.TotalPrice = round2(unit.Mul(decimal.NewFromInt(int64(quantity))))
	}
	return line
}

// TotalUnits multiplies quantity by pack size, treating a pack size below 1 as 1.
// ok is false when the product does not fit in an int.
func TotalUnits(quantity, packOf int) (int, bool) {
	if packOf <= 0 {
		packOf = 1
	}
	if quantity > math.MaxInt/packOf || quantity < math.MinInt/packOf {
		return 0, false
	}
	return quantity * packOf, true
}

// prepPrice prices a non-custom product line from the prep rules
func prepPrice(q Quote, quantity, packOf int) models.LinePrice {
	if packOf <= 0 {
		packOf = 1
	}
	totalUnits, ok := TotalUnits(quantity, packOf)
	if !ok || totalUnits <= 0 {
		return models.LinePrice{}
	}

	rate, ok := ResolveRate(q.Tables.PrepRules, q.Service, q.ProductType, totalUnits)
	if !ok {
		return models.LinePrice{}
	}

	perUnit := decimal.NewFromFloat(rate.PerUnit)
	baseTotal := perUnit.Mul(decimal.NewFromInt(int64(totalUnits)))
	extraPacks := packOf - 1
	if extraPacks < 0 {
		extraPacks = 0
	}
	packCharge := decimal.NewFromFloat(rate.PackSurcharge).Mul(decimal.NewFromInt(int64(extraPacks)))

	return models.LinePrice{
		UnitPrice:  round2(perUnit),
		TotalPrice: round2(baseTotal.Add(packCharge)),
	}
}

// PriceLine derives unit and total price for one line under the quote's context.
// A zero result means no pricing is available.
func PriceLine(q Quote, quantity, packOf int) models.LinePrice {
	switch q.ShipmentType {
	case models.ShipmentTypeBox:
		return flatPrice(LatestPrice(q.Tables.BoxForwarding), quantity)

	case models.ShipmentTypePallet:
		switch q.PalletSubType {
		case models.PalletSubTypeForwarding:
			return flatPrice(LatestPrice(q.Tables.PalletForwarding), quantity)
		case models.PalletSubTypeExistingInventory:
			return flatPrice(LatestPrice(q.Tables.PalletExistingInventory), quantity)
		}
		return models.LinePrice{}

	case models.ShipmentTypeProduct:
		if q.ProductType == models.ProductTypeCustom {
			// $1 is a placeholder until a reviewer sets the real price
			if quantity < 0 {
				quantity = 0
			}
			return models.LinePrice{UnitPrice: 1, TotalPrice: float64(quantity)}
		}
		return prepPrice(q, quantity, packOf)
	}
	return models.LinePrice{}
}

// ApplyLinePrice stores price on line when it differs from what the line holds.
// For rule-priced products a zero result keeps an existing positive price unless
// that price was derived under a different or unrecorded context; box and pallet zeros always clear.
func ApplyLinePrice(line models.ShipmentLine, price models.LinePrice, q Quote) (models.ShipmentLine, bool) {
	key := q.ContextKey()

	unavailable := price.UnitPrice == 0 && price.TotalPrice == 0
	if q.isRulePricedProduct() && unavailable && line.UnitPrice > 0 && line.PricedFor == key {
		return line, false
	}

	if line.UnitPrice == price.UnitPrice && line.TotalPrice == price.TotalPrice && line.PricedFor == key {
		return line, false
	}

	line.UnitPrice = price.UnitPrice
	line.TotalPrice = price.TotalPrice
	line.PricedFor = key
	return line, true
}

// Reprice recomputes every line under q. It does nothing while the tables are loading
// and reports changed=false when all lines already hold their derived prices.
func Reprice(lines []models.ShipmentLine, q Quote) ([]models.ShipmentLine, bool) {
	if q.Tables.Loading {
		return lines, false
	}

	out := make([]models.ShipmentLine, len(lines))
	changed := false
	for i, line := range lines {
		updated, lineChanged := ApplyLinePrice(line, PriceLine(q, line.Quantity, line.PackOf), q)
		out[i] = updated
		changed = changed || lineChanged
	}
	return out, changed
}

// Total sums the line totals, rounded to cents
func Total(lines []models.ShipmentLine) float64 {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(decimal.NewFromFloat(line.TotalPrice))
	}
	return round2(sum)
}
