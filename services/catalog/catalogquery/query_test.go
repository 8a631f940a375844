package catalogquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	id          string
	price       float64
	facets      map[string]string
	ratingCount int
}

func (i item) PriceValue() float64 {
	return i.price
}

func (i item) FacetValue(name string) string {
	return i.facets[name]
}

func (i item) SortID() string {
	return i.id
}

func (i item) Popularity() int {
	return i.ratingCount
}

func ids(items []item) []string {
	result := []string{}
	for _, i := range items {
		result = append(result, i.id)
	}
	return result
}

func TestQuery(t *testing.T) {

	t.Run("Price low to high", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", price: 10},
			{id: "b", price: 30},
			{id: "c", price: 20},
		}

		// when
		result := Query(input, NewFilter(), SortPriceLow)

		// then
		assert.Equal(t, []string{"a", "c", "b"}, ids(result))
	})

	t.Run("Price high to low", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", price: 10},
			{id: "b", price: 30},
			{id: "c", price: 20},
		}

		// when
		result := Query(input, NewFilter(), SortPriceHigh)

		// then
		assert.Equal(t, []string{"b", "c", "a"}, ids(result))
	})

	t.Run("Featured keeps source order", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", price: 10},
			{id: "b", price: 30},
			{id: "c", price: 20},
		}

		// when
		result := Query(input, NewFilter(), SortFeatured)

		// then
		assert.Equal(t, []string{"a", "b", "c"}, ids(result))
	})

	t.Run("Unknown sort key behaves as featured", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", price: 10},
			{id: "b", price: 30},
			{id: "c", price: 20},
		}

		// when
		result := Query(input, NewFilter(), ParseSortKey("cheapest"))

		// then
		assert.Equal(t, []string{"a", "b", "c"}, ids(result))
	})

	t.Run("Newest first on numeric ids", func(t *testing.T) {
		// given
		input := []item{
			{id: "7"},
			{id: "12"},
			{id: "9"},
		}

		// when
		result := Query(input, NewFilter(), SortNewest)

		// then
		assert.Equal(t, []string{"12", "9", "7"}, ids(result))
	})

	t.Run("Newest first on non-numeric ids reverses source order", func(t *testing.T) {
		// given
		input := []item{
			{id: "prod-a"},
			{id: "prod-b"},
			{id: "prod-c"},
		}

		// when
		result := Query(input, NewFilter(), SortNewest)

		// then
		assert.Equal(t, []string{"prod-c", "prod-b", "prod-a"}, ids(result))
	})

	t.Run("Most popular first", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", ratingCount: 54},
			{id: "b", ratingCount: 287},
			{id: "c", ratingCount: 124},
		}

		// when
		result := Query(input, NewFilter(), SortPopular)

		// then
		assert.Equal(t, []string{"b", "c", "a"}, ids(result))
	})

	t.Run("Stable sort keeps source order on ties", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", price: 20},
			{id: "b", price: 10},
			{id: "c", price: 20},
		}

		// when
		result := Query(input, NewFilter(), SortPriceLow)

		// then
		assert.Equal(t, []string{"b", "a", "c"}, ids(result))
	})

	t.Run("Price bounds are inclusive", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", price: 999},
			{id: "b", price: 2500},
			{id: "c", price: 9999},
			{id: "d", price: 10000},
		}

		// when
		result := Query(input, NewFilter().WithPriceBounds(999, 9999), SortFeatured)

		// then
		assert.Equal(t, []string{"a", "b", "c"}, ids(result))
	})

	t.Run("Facet filter keeps matching values only", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", facets: map[string]string{"color": "red"}},
			{id: "b", facets: map[string]string{"color": "blue"}},
			{id: "c", facets: map[string]string{"color": "red"}},
		}

		// when
		result := Query(input, NewFilter().ToggleFacet("color", "red"), SortFeatured)

		// then
		assert.Equal(t, []string{"a", "c"}, ids(result))
	})

	t.Run("Empty facet set does not constrain", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", facets: map[string]string{"color": "red"}},
			{id: "b", facets: map[string]string{"color": "blue"}},
		}
		filter := NewFilter().ToggleFacet("color", "red").ToggleFacet("color", "red")

		// when
		result := Query(input, filter, SortFeatured)

		// then
		assert.Equal(t, []string{"a", "b"}, ids(result))
	})

	t.Run("Multiple values within one facet are OR-ed", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", facets: map[string]string{"color": "red"}},
			{id: "b", facets: map[string]string{"color": "blue"}},
			{id: "c", facets: map[string]string{"color": "green"}},
		}
		filter := NewFilter().ToggleFacet("color", "red").ToggleFacet("color", "blue")

		// when
		result := Query(input, filter, SortFeatured)

		// then
		assert.Equal(t, []string{"a", "b"}, ids(result))
	})

	t.Run("Facets are AND-ed with each other and with price", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", price: 100, facets: map[string]string{"color": "red", "material": "leather"}},
			{id: "b", price: 100, facets: map[string]string{"color": "red", "material": "canvas"}},
			{id: "c", price: 5000, facets: map[string]string{"color": "red", "material": "leather"}},
		}
		filter := NewFilter().
			WithPriceBounds(0, 1000).
			ToggleFacet("color", "red").
			ToggleFacet("material", "leather")

		// when
		result := Query(input, filter, SortFeatured)

		// then
		assert.Equal(t, []string{"a"}, ids(result))
	})

	t.Run("Query never mutates its input", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", price: 30},
			{id: "b", price: 10},
			{id: "c", price: 20},
		}

		// when
		result := Query(input, NewFilter(), SortPriceLow)

		// then
		assert.Equal(t, []string{"b", "c", "a"}, ids(result))
		assert.Equal(t, []string{"a", "b", "c"}, ids(input))
	})

	t.Run("Reset matches everything again", func(t *testing.T) {
		// given
		input := []item{
			{id: "a", price: 100, facets: map[string]string{"color": "red"}},
			{id: "b", price: 99999, facets: map[string]string{"color": "blue"}},
		}
		filter := NewFilter().WithPriceBounds(0, 1000).ToggleFacet("color", "red")

		// when
		result := Query(input, filter.Reset(), SortFeatured)

		// then
		assert.Equal(t, []string{"a", "b"}, ids(result))
	})
}
