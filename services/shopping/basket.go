package shopping

// Basket owns the cart and wishlist collections. Both preserve insertion
// order: new items append, in-place updates never reorder. No operation
// fails: removing or moving an unknown product id is a silent no-op.
type Basket struct {
	Cart     []CartLine
	Wishlist []WishlistEntry
}

// AddToCart merges on add: an existing line for the same product id gets its
// quantity incremented, otherwise a new line is appended. A quantity below 1
// is treated as 1.
func (b *Basket) AddToCart(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range b.Cart {
		if b.Cart[i].ID == p.ID {
			b.Cart[i].Quantity += quantity
			return
		}
	}

	b.Cart = append(b.Cart, CartLine{Product: p, Quantity: quantity})
}

func (b *Basket) RemoveFromCart(productID string) {
	for i := range b.Cart {
		if b.Cart[i].ID == productID {
			b.Cart = append(b.Cart[:i], b.Cart[i+1:]...)
			return
		}
	}
}

// UpdateCartQuantity sets a line's quantity to exactly the given value.
// Any value <= 0 deletes the line.
func (b *Basket) UpdateCartQuantity(productID string, quantity int) {
	if quantity <= 0 {
		b.RemoveFromCart(productID)
		return
	}

	for i := range b.Cart {
		if b.Cart[i].ID == productID {
			b.Cart[i].Quantity = quantity
			return
		}
	}
}

func (b *Basket) ClearCart() {
	b.Cart = nil
}

// AddToWishlist is idempotent: adding a product that is already present
// leaves the wishlist untouched.
func (b *Basket) AddToWishlist(p Product) {
	if b.IsInWishlist(p.ID) {
		return
	}

	b.Wishlist = append(b.Wishlist, WishlistEntry{Product: p})
}

func (b *Basket) RemoveFromWishlist(productID string) {
	for i := range b.Wishlist {
		if b.Wishlist[i].ID == productID {
			b.Wishlist = append(b.Wishlist[:i], b.Wishlist[i+1:]...)
			return
		}
	}
}

// ToggleWishlist removes the product when present and adds it when absent.
// It reports whether the product is in the wishlist afterwards.
func (b *Basket) ToggleWishlist(p Product) bool {
	if b.IsInWishlist(p.ID) {
		b.RemoveFromWishlist(p.ID)
		return false
	}

	b.AddToWishlist(p)
	return true
}

func (b Basket) IsInWishlist(productID string) bool {
	for _, entry := range b.Wishlist {
		if entry.ID == productID {
			return true
		}
	}
	return false
}

// MoveToCart moves a wishlist entry into the cart with quantity 1.
// No-op when the product is not on the wishlist.
func (b *Basket) MoveToCart(productID string) {
	for _, entry := range b.Wishlist {
		if entry.ID == productID {
			b.AddToCart(entry.Product, 1)
			b.RemoveFromWishlist(productID)
			return
		}
	}
}

// MoveToWishlist moves a cart line onto the wishlist, dropping its quantity.
// No-op when the product is not in the cart.
func (b *Basket) MoveToWishlist(productID string) {
	for _, line := range b.Cart {
		if line.ID == productID {
			b.AddToWishlist(line.Product)
			b.RemoveFromCart(productID)
			return
		}
	}
}

func (b Basket) CartTotal() float64 {
	var total float64
	for _, line := range b.Cart {
		total += line.TotalPrice()
	}
	return total
}

// CartItemCount is the total unit count across all lines, not the line count.
func (b Basket) CartItemCount() int {
	var count int
	for _, line := range b.Cart {
		count += line.Quantity
	}
	return count
}
