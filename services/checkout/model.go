package checkout

import (
	"time"

	"github.com/sereneshop/storefront/services/shopping"
)

const orderStatusConfirmed = "confirmed"

// Order is a snapshot of the cart at the moment of checkout.
type Order struct {
	UID        string              `json:"id"`
	CreatedAt  time.Time           `json:"createdAt"`
	Lines      []shopping.CartLine `json:"lines"`
	TotalPrice float64             `json:"totalPrice"`
	ItemCount  int                 `json:"itemCount"`
	Status     string              `json:"status"`
}
