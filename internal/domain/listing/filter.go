package listing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Price band selectors accepted in FilterState.PriceRange
const (
	PriceRangeAny    = ""
	PriceRangeUnder  = "under-1000"
	PriceRangeMid    = "1000-15000"
	PriceRangeOver   = "over-15000"
	PriceRangeCustom = "custom"
)

// FilterState captures the browsing filters applied to a property list.
// The zero value matches everything.
type FilterState struct {
	Locations      []string
	PriceRange     string
	CustomPriceMin *decimal.Decimal
	CustomPriceMax *decimal.Decimal
	LandAreaMin    string
	LandAreaMax    string
	PropertyTypes  []string
	Amenities      []string
}

// IsZero reports whether no predicate is active
func (s FilterState) IsZero() bool {
	return len(s.Locations) == 0 &&
		s.PriceRange == PriceRangeAny &&
		s.LandAreaMin == "" && s.LandAreaMax == "" &&
		len(s.PropertyTypes) == 0 &&
		len(s.Amenities) == 0
}

// Filter returns the subset of properties matching every active predicate.
// Input order is preserved and the input slice is never mutated.
func Filter(properties []Property, state FilterState) []Property {
	if state.IsZero() {
		return properties
	}
	out := make([]Property, 0, len(properties))
	for _, p := range properties {
		if state.Matches(&p) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single property passes every active predicate
func (s FilterState) Matches(p *Property) bool {
	if len(s.Locations) > 0 && !matchLocation(p.Location, s.Locations) {
		return false
	}
	if !matchPrice(p.Price, s) {
		return false
	}
	if len(s.PropertyTypes) > 0 && !matchType(p.PropertyType, s.PropertyTypes) {
		return false
	}
	if len(s.Amenities) > 0 && !matchAmenities(p.Amenities, s.Amenities) {
		return false
	}
	return matchLandArea(p.AreaSqft, s.LandAreaMin, s.LandAreaMax)
}

// matchLocation is satisfied by any one requested location appearing as a
// case-insensitive substring of the property's location.
func matchLocation(location string, wanted []string) bool {
	loc := strings.ToLower(location)
	for _, w := range wanted {
		if strings.Contains(loc, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func matchPrice(price decimal.Decimal, s FilterState) bool {
	switch s.PriceRange {
	case PriceRangeUnder:
		return price.LessThan(decimal.NewFromInt(1000))
	case PriceRangeMid:
		// Boundary values 1000 and 15000 are both included.
		return price.GreaterThanOrEqual(decimal.NewFromInt(1000)) &&
			price.LessThanOrEqual(decimal.NewFromInt(15000))
	case PriceRangeOver:
		return price.GreaterThan(decimal.NewFromInt(15000))
	case PriceRangeCustom:
		// An absent bound is open-ended, not zero.
		if s.CustomPriceMin != nil && price.LessThan(*s.CustomPriceMin) {
			return false
		}
		if s.CustomPriceMax != nil && price.GreaterThan(*s.CustomPriceMax) {
			return false
		}
		return true
	default:
		return true
	}
}

// matchType is satisfied by any one requested type. "Single Family Home" is
// accepted as an alias for the "house" type.
func matchType(propertyType string, wanted []string) bool {
	pt := strings.ToLower(propertyType)
	for _, w := range wanted {
		if strings.EqualFold(w, propertyType) {
			return true
		}
		if w == "Single Family Home" && pt == "house" {
			return true
		}
	}
	return false
}

// matchAmenities requires every requested amenity to be present on the
// property, unlike the disjunctive location and type predicates.
func matchAmenities(have []string, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchLandArea applies the optional numeric-string bounds. A non-numeric
// bound is treated as absent, not as zero or an error.
func matchLandArea(area int, minStr, maxStr string) bool {
	if min, ok := parseBound(minStr); ok && float64(area) < min {
		return false
	}
	if max, ok := parseBound(maxStr); ok && float64(area) > max {
		return false
	}
	return true
}

func parseBound(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
