package pricing

import (
	"fmt"
	"sort"

	"fulfillment-portal/models"
)

// Rate is the prep rate that applies to a unit count
type Rate struct {
	PerUnit       float64 // Excludes the pack surcharge
	PackSurcharge float64 // Flat amount per pack beyond the first
}

// IsPrepService reports whether service is priced by prep rules
func IsPrepService(service string) bool {
	return service == models.ServicePrepFBA || service == models.ServicePrepFBM
}

func upperBound(rule models.PricingRule) (int, bool) {
	if rule.MaxUnits == nil || *rule.MaxUnits == 0 {
		return 0, false
	}
	return *rule.MaxUnits, true
}

func bracketContains(rule models.PricingRule, units int) bool {
	if units < rule.MinUnits {
		return false
	}
	max, bounded := upperBound(rule)
	return !bounded || units <= max
}

// matchingRules returns the rules for service and productType ordered by lower bound
func matchingRules(rules []models.PricingRule, service, productType string) []models.PricingRule {
	var matched []models.PricingRule
	for _, rule := range rules {
		if rule.Service == service && rule.ProductType == productType {
			matched = append(matched, rule)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MinUnits < matched[j].MinUnits
	})
	return matched
}

// ResolveRate picks the rule whose unit bracket contains totalUnits.
// ok is false when no bracket matches, the service is not a prep service,
// or the matching rule carries no usable rate.
func ResolveRate(rules []models.PricingRule, service, productType string, totalUnits int) (rate Rate, ok bool) {
	if totalUnits <= 0 || !IsPrepService(service) {
		return Rate{}, false
	}

	for _, rule := range matchingRules(rules, service, productType) {
		if !bracketContains(rule, totalUnits) {
			continue
		}
		if !rule.Rate.Valid || rule.Rate.Value < 0 {
			return Rate{}, false
		}
		rate = Rate{PerUnit: rule.Rate.Value}
		if rule.PackSurcharge.Valid && rule.PackSurcharge.Value > 0 {
			rate.PackSurcharge = rule.PackSurcharge.Value
		}
		return rate, true
	}
	return Rate{}, false
}

// ValidateRules checks that brackets are well formed and do not overlap
// within a service/product type.
func ValidateRules(rules []models.PricingRule) error {
	type key struct{ service, productType string }
	groups := make(map[key]bool)

	for _, rule := range rules {
		if !IsPrepService(rule.Service) {
			return fmt.Errorf("rule %q: unknown prep service %q", rule.ID, rule.Service)
		}
		switch rule.ProductType {
		case models.ProductTypeStandard, models.ProductTypeLarge, models.ProductTypeCustom:
		default:
			return fmt.Errorf("rule %q: unknown product type %q", rule.ID, rule.ProductType)
		}
		if rule.MinUnits < 0 {
			return fmt.Errorf("rule %q: minUnits cannot be negative", rule.ID)
		}
		if max, bounded := upperBound(rule); bounded && max < rule.MinUnits {
			return fmt.Errorf("rule %q: maxUnits %d is below minUnits %d", rule.ID, max, rule.MinUnits)
		}
		if !rule.Rate.Valid || rule.Rate.Value < 0 {
			return fmt.Errorf("rule %q: rate must be a non-negative number", rule.ID)
		}
		groups[key{rule.Service, rule.ProductType}] = true
	}

	for k := range groups {
		matched := matchingRules(rules, k.service, k.productType)
		for i := 1; i < len(matched); i++ {
			prev := matched[i-1]
			prevMax, bounded := upperBound(prev)
			if !bounded {
				return fmt.Errorf("%s/%s: no brackets allowed after open-ended rule %q", k.service, k.productType, prev.ID)
			}
			if matched[i].MinUnits <= prevMax {
				return fmt.Errorf("%s/%s: rules %q and %q overlap", k.service, k.productType, prev.ID, matched[i].ID)
			}
		}
	}
	return nil
}
