package catalogquery

import (
	"sort"
	"strconv"
)

// Queryable is what the engine needs to know about a product in order to
// filter and sort it.
type Queryable interface {
	PriceValue() float64
	FacetValue(name string) string
	SortID() string
	Popularity() int
}

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
	SortPopular   SortKey = "popular"
)

// ParseSortKey is lenient: anything it does not recognize means featured.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceLow, SortPriceHigh, SortNewest, SortPopular:
		return SortKey(raw)
	default:
		return SortFeatured
	}
}

// Query filters and sorts a product listing. It always returns a fresh
// slice and never mutates or reorders its input. Sorts are stable: products
// that compare equal keep their source order. Featured is the source order
// itself.
func Query[T Queryable](products []T, filter Filter, sortKey SortKey) []T {
	result := []T{}
	for _, p := range products {
		if filter.matches(p) {
			result = append(result, p)
		}
	}

	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PriceValue() < result[j].PriceValue()
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PriceValue() > result[j].PriceValue()
		})
	case SortNewest:
		sortNewestFirst(result)
	case SortPopular:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Popularity() > result[j].Popularity()
		})
	default:
		// featured: keep source order
	}

	return result
}

// sortNewestFirst orders by numeric id descending when every id parses as
// an integer. A catalog with non-numeric ids falls back to reversed source
// order, so its most recent additions still come first.
func sortNewestFirst[T Queryable](products []T) {
	allNumeric := true
	for _, p := range products {
		if _, err := strconv.Atoi(p.SortID()); err != nil {
			allNumeric = false
			break
		}
	}

	if allNumeric {
		sort.SliceStable(products, func(i, j int) bool {
			a, _ := strconv.Atoi(products[i].SortID())
			b, _ := strconv.Atoi(products[j].SortID())
			return a > b
		})
		return
	}

	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
}
