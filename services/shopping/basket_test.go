package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	tote = Product{
		ID:       "1",
		Name:     "Sienna Leather Tote",
		Price:    15000,
		Category: "handbags",
		Attributes: map[string]string{
			"color":    "tan",
			"material": "leather",
		},
	}
	scarf = Product{
		ID:       "2",
		Name:     "Florentine Silk Scarf",
		Price:    2000,
		Category: "scarves",
	}
)

func TestAddToCart(t *testing.T) {
	t.Run("First add appends a line with quantity 1", func(t *testing.T) {
		b := Basket{}

		b.AddToCart(tote, 1)

		assert.Len(t, b.Cart, 1)
		assert.Equal(t, 1, b.CartItemCount())
	})

	t.Run("Second add merges into the existing line", func(t *testing.T) {
		b := Basket{}

		b.AddToCart(tote, 1)
		b.AddToCart(tote, 1)

		assert.Len(t, b.Cart, 1)
		assert.Equal(t, 2, b.Cart[0].Quantity)
		assert.Equal(t, 2, b.CartItemCount())
	})

	t.Run("Quantity below 1 defaults to 1", func(t *testing.T) {
		b := Basket{}

		b.AddToCart(tote, 0)

		assert.Equal(t, 1, b.Cart[0].Quantity)
	})

	t.Run("Lines keep insertion order", func(t *testing.T) {
		b := Basket{}

		b.AddToCart(tote, 1)
		b.AddToCart(scarf, 1)
		b.AddToCart(tote, 3)

		assert.Equal(t, "1", b.Cart[0].ID)
		assert.Equal(t, "2", b.Cart[1].ID)
		assert.Equal(t, 4, b.Cart[0].Quantity)
	})
}

func TestUpdateCartQuantity(t *testing.T) {
	t.Run("Sets quantity exactly", func(t *testing.T) {
		b := Basket{}
		b.AddToCart(tote, 2)

		b.UpdateCartQuantity(tote.ID, 5)

		assert.Equal(t, 5, b.Cart[0].Quantity)
	})

	t.Run("Zero removes the line", func(t *testing.T) {
		b := Basket{}
		b.AddToCart(tote, 2)

		b.UpdateCartQuantity(tote.ID, 0)

		assert.Empty(t, b.Cart)
	})

	t.Run("Negative value also removes the line", func(t *testing.T) {
		b := Basket{}
		b.AddToCart(tote, 2)

		b.UpdateCartQuantity(tote.ID, -5)

		assert.Empty(t, b.Cart)
	})

	t.Run("Unknown product is a no-op", func(t *testing.T) {
		b := Basket{}
		b.AddToCart(tote, 2)

		b.UpdateCartQuantity("unknown", 5)

		assert.Equal(t, 2, b.Cart[0].Quantity)
	})
}

func TestRemoveFromCart(t *testing.T) {
	t.Run("Removes existing line", func(t *testing.T) {
		b := Basket{}
		b.AddToCart(tote, 1)

		b.RemoveFromCart(tote.ID)

		assert.Empty(t, b.Cart)
	})

	t.Run("Unknown product is a no-op", func(t *testing.T) {
		b := Basket{}
		b.AddToCart(tote, 1)

		b.RemoveFromCart("unknown")

		assert.Len(t, b.Cart, 1)
	})
}

func TestWishlist(t *testing.T) {
	t.Run("Add is idempotent", func(t *testing.T) {
		b := Basket{}

		b.AddToWishlist(tote)
		b.AddToWishlist(tote)

		assert.Len(t, b.Wishlist, 1)
	})

	t.Run("Toggle twice restores the original state", func(t *testing.T) {
		b := Basket{}

		assert.True(t, b.ToggleWishlist(tote))
		assert.True(t, b.IsInWishlist(tote.ID))

		assert.False(t, b.ToggleWishlist(tote))
		assert.False(t, b.IsInWishlist(tote.ID))
		assert.Empty(t, b.Wishlist)
	})

	t.Run("Remove unknown product is a no-op", func(t *testing.T) {
		b := Basket{}
		b.AddToWishlist(tote)

		b.RemoveFromWishlist("unknown")

		assert.Len(t, b.Wishlist, 1)
	})
}

func TestMoveBetweenCollections(t *testing.T) {
	t.Run("Move to cart uses quantity 1 and removes the wishlist entry", func(t *testing.T) {
		b := Basket{}
		b.AddToWishlist(tote)

		b.MoveToCart(tote.ID)

		assert.Empty(t, b.Wishlist)
		assert.Len(t, b.Cart, 1)
		assert.Equal(t, 1, b.Cart[0].Quantity)
		assert.Equal(t, tote, b.Cart[0].Product)
	})

	t.Run("Move to cart merges with an existing line", func(t *testing.T) {
		b := Basket{}
		b.AddToCart(tote, 2)
		b.AddToWishlist(tote)

		b.MoveToCart(tote.ID)

		assert.Len(t, b.Cart, 1)
		assert.Equal(t, 3, b.Cart[0].Quantity)
	})

	t.Run("Move to wishlist drops the quantity", func(t *testing.T) {
		b := Basket{}
		b.AddToCart(tote, 3)

		b.MoveToWishlist(tote.ID)

		assert.Empty(t, b.Cart)
		assert.Len(t, b.Wishlist, 1)
		assert.Equal(t, tote, b.Wishlist[0].Product)
	})

	t.Run("Move of unknown product is a no-op", func(t *testing.T) {
		b := Basket{}

		b.MoveToCart("unknown")
		b.MoveToWishlist("unknown")

		assert.Empty(t, b.Cart)
		assert.Empty(t, b.Wishlist)
	})
}

func TestCartTotals(t *testing.T) {
	t.Run("Total multiplies price by quantity", func(t *testing.T) {
		b := Basket{}
		b.AddToCart(Product{ID: "a", Price: 100}, 2)
		b.AddToCart(Product{ID: "b", Price: ParsePrice("₹50.00")}, 1)

		assert.Equal(t, float64(250), b.CartTotal())
		assert.Equal(t, 3, b.CartItemCount())
	})

	t.Run("Empty basket totals zero", func(t *testing.T) {
		b := Basket{}

		assert.Equal(t, float64(0), b.CartTotal())
		assert.Equal(t, 0, b.CartItemCount())
	})
}

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name     string
		in       any
		expected float64
	}{
		{name: "Number", in: float64(15000), expected: 15000},
		{name: "Integer", in: 42, expected: 42},
		{name: "Plain string", in: "50.00", expected: 50},
		{name: "Currency string", in: "₹15,000", expected: 15000},
		{name: "Negative currency string", in: "₹-1,000", expected: -1000},
		{name: "Garbage", in: "free!", expected: 0},
		{name: "Nil", in: nil, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParsePrice(tc.in))
		})
	}
}
