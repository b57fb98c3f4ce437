package listing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prop(title, location, propertyType string, price int64, area int, amenities ...string) Property {
	p := Property{
		Title:        title,
		Location:     location,
		PropertyType: propertyType,
		Price:        decimal.NewFromInt(price),
		AreaSqft:     area,
		Amenities:    amenities,
	}
	return p
}

func sampleProperties() []Property {
	return []Property{
		prop("Lakeside Villa", "Colombo, Sri Lanka", "house", 12000, 2400, "Pool", "Garden", "Garage"),
		prop("City Apartment", "Kandy, Sri Lanka", "apartment", 850, 900, "Gym", "Elevator"),
		prop("Beach House", "Galle, Sri Lanka", "house", 20000, 3200, "Pool", "Sea View"),
		prop("Downtown Loft", "Colombo, Sri Lanka", "apartment", 1000, 1100, "Gym"),
		prop("Country Estate", "Nuwara Eliya, Sri Lanka", "villa", 15000, 5000, "Garden", "Fireplace"),
	}
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func titles(ps []Property) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func TestFilterIdentity(t *testing.T) {
	props := sampleProperties()

	t.Run("empty state returns input unchanged", func(t *testing.T) {
		result := Filter(props, FilterState{})
		assert.Equal(t, props, result)
	})

	t.Run("zero state is reported as zero", func(t *testing.T) {
		assert.True(t, FilterState{}.IsZero())
		assert.False(t, FilterState{PriceRange: PriceRangeUnder}.IsZero())
		assert.False(t, FilterState{Locations: []string{"Colombo"}}.IsZero())
	})
}

func TestFilterLocations(t *testing.T) {
	props := sampleProperties()

	t.Run("matches case-insensitive substring", func(t *testing.T) {
		result := Filter(props, FilterState{Locations: []string{"colombo"}})
		assert.Equal(t, []string{"Lakeside Villa", "Downtown Loft"}, titles(result))
	})

	t.Run("multiple locations are OR-matched", func(t *testing.T) {
		result := Filter(props, FilterState{Locations: []string{"Kandy", "Galle"}})
		assert.Equal(t, []string{"City Apartment", "Beach House"}, titles(result))
	})

	t.Run("no match excludes everything", func(t *testing.T) {
		result := Filter(props, FilterState{Locations: []string{"Tokyo"}})
		assert.Empty(t, result)
	})
}

func TestFilterPriceBands(t *testing.T) {
	props := []Property{
		prop("A", "X", "house", 500, 100),
		prop("B", "X", "house", 1200, 100),
		prop("C", "X", "house", 20000, 100),
	}

	t.Run("under-1000", func(t *testing.T) {
		result := Filter(props, FilterState{PriceRange: PriceRangeUnder})
		assert.Equal(t, []string{"A"}, titles(result))
	})

	t.Run("1000-15000 band", func(t *testing.T) {
		result := Filter(props, FilterState{PriceRange: PriceRangeMid})
		assert.Equal(t, []string{"B"}, titles(result))
	})

	t.Run("over-15000", func(t *testing.T) {
		result := Filter(props, FilterState{PriceRange: PriceRangeOver})
		assert.Equal(t, []string{"C"}, titles(result))
	})

	t.Run("band boundaries are inclusive", func(t *testing.T) {
		boundary := []Property{
			prop("Low", "X", "house", 1000, 100),
			prop("High", "X", "house", 15000, 100),
			prop("Above", "X", "house", 15001, 100),
			prop("Below", "X", "house", 999, 100),
		}
		result := Filter(boundary, FilterState{PriceRange: PriceRangeMid})
		assert.Equal(t, []string{"Low", "High"}, titles(result))
	})

	t.Run("custom range uses min and max inclusively", func(t *testing.T) {
		result := Filter(props, FilterState{
			PriceRange:     PriceRangeCustom,
			CustomPriceMin: decPtr(500),
			CustomPriceMax: decPtr(1200),
		})
		assert.Equal(t, []string{"A", "B"}, titles(result))
	})

	t.Run("custom range with min only is open above", func(t *testing.T) {
		result := Filter(props, FilterState{
			PriceRange:     PriceRangeCustom,
			CustomPriceMin: decPtr(1000),
		})
		assert.Equal(t, []string{"B", "C"}, titles(result))
	})

	t.Run("custom range with max only is open below", func(t *testing.T) {
		result := Filter(props, FilterState{
			PriceRange:     PriceRangeCustom,
			CustomPriceMax: decPtr(1200),
		})
		assert.Equal(t, []string{"A", "B"}, titles(result))
	})

	t.Run("custom range with no bounds matches everything", func(t *testing.T) {
		result := Filter(props, FilterState{PriceRange: PriceRangeCustom})
		assert.Equal(t, []string{"A", "B", "C"}, titles(result))
	})

	t.Run("unknown selector is a no-op", func(t *testing.T) {
		result := Filter(props, FilterState{PriceRange: "", Locations: []string{"X"}})
		assert.Len(t, result, 3)
	})
}

func TestFilterPropertyTypes(t *testing.T) {
	props := sampleProperties()

	t.Run("matches case-insensitively", func(t *testing.T) {
		result := Filter(props, FilterState{PropertyTypes: []string{"APARTMENT"}})
		assert.Equal(t, []string{"City Apartment", "Downtown Loft"}, titles(result))
	})

	t.Run("multiple types are OR-matched", func(t *testing.T) {
		result := Filter(props, FilterState{PropertyTypes: []string{"apartment", "villa"}})
		assert.Equal(t, []string{"City Apartment", "Downtown Loft", "Country Estate"}, titles(result))
	})

	t.Run("Single Family Home aliases house", func(t *testing.T) {
		result := Filter(props, FilterState{PropertyTypes: []string{"Single Family Home"}})
		assert.Equal(t, []string{"Lakeside Villa", "Beach House"}, titles(result))
	})
}

func TestFilterAmenities(t *testing.T) {
	props := sampleProperties()

	t.Run("single amenity", func(t *testing.T) {
		result := Filter(props, FilterState{Amenities: []string{"pool"}})
		assert.Equal(t, []string{"Lakeside Villa", "Beach House"}, titles(result))
	})

	t.Run("all requested amenities must be present", func(t *testing.T) {
		result := Filter(props, FilterState{Amenities: []string{"Pool", "Garden"}})
		assert.Equal(t, []string{"Lakeside Villa"}, titles(result))
	})

	t.Run("missing one amenity excludes the property", func(t *testing.T) {
		result := Filter(props, FilterState{Amenities: []string{"Pool", "Helipad"}})
		assert.Empty(t, result)
	})
}

func TestFilterLandArea(t *testing.T) {
	props := sampleProperties()

	t.Run("lower bound", func(t *testing.T) {
		result := Filter(props, FilterState{LandAreaMin: "3000"})
		assert.Equal(t, []string{"Beach House", "Country Estate"}, titles(result))
	})

	t.Run("upper bound", func(t *testing.T) {
		result := Filter(props, FilterState{LandAreaMax: "1000"})
		assert.Equal(t, []string{"City Apartment"}, titles(result))
	})

	t.Run("both bounds", func(t *testing.T) {
		result := Filter(props, FilterState{LandAreaMin: "1000", LandAreaMax: "2500"})
		assert.Equal(t, []string{"Lakeside Villa", "Downtown Loft"}, titles(result))
	})

	t.Run("non-numeric bound is ignored", func(t *testing.T) {
		withBogus := Filter(props, FilterState{LandAreaMin: "abc"})
		withEmpty := Filter(props, FilterState{LandAreaMin: ""})
		assert.Equal(t, withEmpty, withBogus)
		assert.Len(t, withBogus, len(props))
	})
}

func TestFilterMonotonicNarrowing(t *testing.T) {
	props := sampleProperties()

	base := FilterState{Locations: []string{"Sri Lanka"}}
	baseResult := Filter(props, base)
	require.Len(t, baseResult, 5)

	t.Run("adding an amenity never grows the result", func(t *testing.T) {
		narrowed := base
		narrowed.Amenities = []string{"Pool"}
		result := Filter(props, narrowed)
		assert.LessOrEqual(t, len(result), len(baseResult))
	})

	t.Run("combined predicates intersect", func(t *testing.T) {
		state := FilterState{
			Locations:     []string{"Colombo", "Galle"},
			PropertyTypes: []string{"house"},
			Amenities:     []string{"Pool"},
		}
		result := Filter(props, state)
		assert.Equal(t, []string{"Lakeside Villa", "Beach House"}, titles(result))
	})
}

func TestFilterPreservesOrder(t *testing.T) {
	props := sampleProperties()
	result := Filter(props, FilterState{PropertyTypes: []string{"house", "apartment", "villa"}})

	require.Len(t, result, 5)
	assert.Equal(t, titles(props), titles(result))
}
