package shopping

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Product is the normalized snapshot of a catalog record that travels into
// the cart and wishlist. Price is always numeric here: any number-or-string
// ambiguity is resolved at the boundary with ParsePrice.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	Image       string            `json:"image,omitempty"`
	Category    string            `json:"category,omitempty"`
	Rating      float64           `json:"rating,omitempty"`
	RatingCount int               `json:"ratingCount,omitempty"`
	Badges      []string          `json:"badges,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// CartLine is one product's entry in the cart. Quantity is always >= 1:
// a line that would reach zero is deleted instead.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

func (l CartLine) TotalPrice() float64 {
	return l.Price * float64(l.Quantity)
}

// WishlistEntry is one product's entry in the wishlist. No quantity.
type WishlistEntry struct {
	Product
}

// ParsePrice normalizes a price that may arrive as a number or as a
// currency-formatted string such as "₹15,000": everything except digits,
// '.' and '-' is stripped before parsing. Unparsable input yields 0.
func ParsePrice(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		stripped := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				return r
			}
			return -1
		}, v)
		f, err := strconv.ParseFloat(stripped, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
