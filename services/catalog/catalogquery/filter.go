package catalogquery

import "math"

// Filter narrows a product listing. Price bounds are inclusive. Facets maps
// a facet name (brand, color, material, ...) to the set of accepted values;
// a facet with an empty set does not constrain anything.
type Filter struct {
	PriceMin float64
	PriceMax float64
	Facets   map[string][]string
}

// NewFilter returns a filter that matches everything.
func NewFilter() Filter {
	return Filter{
		PriceMin: 0,
		PriceMax: math.MaxFloat64,
		Facets:   map[string][]string{},
	}
}

// WithPriceBounds returns a copy with the given inclusive price range.
func (f Filter) WithPriceBounds(min, max float64) Filter {
	f.PriceMin = min
	f.PriceMax = max
	return f
}

// ToggleFacet returns a copy with the value added to the facet's accepted
// set, or removed from it when already present. The receiver is not changed.
func (f Filter) ToggleFacet(facet string, value string) Filter {
	facets := make(map[string][]string, len(f.Facets))
	for name, values := range f.Facets {
		facets[name] = append([]string{}, values...)
	}

	existing := facets[facet]
	kept := []string{}
	found := false
	for _, v := range existing {
		if v == value {
			found = true
			continue
		}
		kept = append(kept, v)
	}
	if !found {
		kept = append(kept, value)
	}
	if len(kept) == 0 {
		delete(facets, facet)
	} else {
		facets[facet] = kept
	}

	f.Facets = facets
	return f
}

// Reset returns a filter that matches everything again.
func (f Filter) Reset() Filter {
	return NewFilter()
}

func (f Filter) matches(item Queryable) bool {
	price := item.PriceValue()
	if price < f.PriceMin || price > f.PriceMax {
		return false
	}
	for facet, accepted := range f.Facets {
		if len(accepted) == 0 {
			continue
		}
		value := item.FacetValue(facet)
		found := false
		for _, v := range accepted {
			if v == value {
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
