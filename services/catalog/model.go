package catalog

import (
	"strings"
	"time"

	"github.com/sereneshop/storefront/services/shopping"
)

// Product is a catalog record. Price is in whole rupees.
type Product struct {
	UID         string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       int               `json:"price"`
	Image       string            `json:"image,omitempty"`
	Category    string            `json:"category"`
	Badge       string            `json:"badge,omitempty"`
	InStock     bool              `json:"inStock"`
	StockCount  int               `json:"stockCount"`
	Featured    bool              `json:"featured"`
	Bestseller  bool              `json:"bestseller"`
	Rating      float64           `json:"rating"`
	RatingCount int               `json:"ratingCount"`
	DateAdded   time.Time         `json:"dateAdded"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

func (p Product) PriceValue() float64 {
	return float64(p.Price)
}

func (p Product) FacetValue(name string) string {
	return p.Attributes[name]
}

func (p Product) SortID() string {
	return p.UID
}

func (p Product) Popularity() int {
	return p.RatingCount
}

// Snapshot converts a catalog record into the normalized form that the
// basket carries around.
func (p Product) Snapshot() shopping.Product {
	var badges []string
	if p.Badge != "" {
		badges = []string{p.Badge}
	}
	attributes := make(map[string]string, len(p.Attributes))
	for name, value := range p.Attributes {
		attributes[name] = value
	}
	if len(attributes) == 0 {
		attributes = nil
	}
	return shopping.Product{
		ID:          p.UID,
		Name:        p.Name,
		Description: p.Description,
		Price:       float64(p.Price),
		Image:       p.Image,
		Category:    p.Category,
		Rating:      p.Rating,
		RatingCount: p.RatingCount,
		Badges:      badges,
		Attributes:  attributes,
	}
}

// FormatPrice renders a rupee amount with en-IN digit grouping: the last
// group has 3 digits, every group before it has 2. 1500000 -> "₹15,00,000".
func FormatPrice(rupees int) string {
	sign := ""
	if rupees < 0 {
		sign = "-"
		rupees = -rupees
	}

	digits := []byte{}
	for rupees > 9 {
		digits = append([]byte{byte('0' + rupees%10)}, digits...)
		rupees /= 10
	}
	digits = append([]byte{byte('0' + rupees)}, digits...)

	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteString("₹")
	for i, d := range digits {
		remaining := len(digits) - i
		if i > 0 && (remaining == 3 || (remaining > 3 && (remaining-3)%2 == 0)) {
			sb.WriteByte(',')
		}
		sb.WriteByte(d)
	}
	return sb.String()
}
