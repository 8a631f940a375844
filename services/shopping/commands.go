package shopping

import (
	"context"
	"fmt"

	"github.com/sereneshop/storefront/lib/myerrors"
	"github.com/sereneshop/storefront/lib/myevents"
	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/services/checkout/checkoutevents"
	"github.com/sereneshop/storefront/services/shopping/shoppingevents"
)

type CartOverview struct {
	Lines      []CartLine
	TotalPrice float64
	ItemCount  int
}

type WishlistOverview struct {
	Entries []WishlistEntry
}

func (s *service) cartOverview() CartOverview {
	return CartOverview{
		Lines:      s.basketStore.Cart(),
		TotalPrice: s.basketStore.CartTotal(),
		ItemCount:  s.basketStore.CartItemCount(),
	}
}

func (s *service) wishlistOverview() WishlistOverview {
	return WishlistOverview{
		Entries: s.basketStore.Wishlist(),
	}
}

func (s *service) addToCart(c context.Context, productID string, quantity int) (CartOverview, error) {
	s.logger.Log(c, productID, mylog.SeverityInfo, "Add product %s (quantity %d) to cart", productID, quantity)

	product, found, err := s.catalog.ProductByID(c, productID)
	if err != nil {
		return CartOverview{}, myerrors.NewInternalError(err)
	}
	if !found {
		return CartOverview{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productID))
	}

	s.basketStore.AddToCart(c, product, quantity)

	s.publish(c, shoppingevents.CartItemAdded{ProductID: productID, Quantity: quantity})

	return s.cartOverview(), nil
}

func (s *service) removeFromCart(c context.Context, productID string) CartOverview {
	s.logger.Log(c, productID, mylog.SeverityInfo, "Remove product %s from cart", productID)

	s.basketStore.RemoveFromCart(c, productID)

	s.publish(c, shoppingevents.CartItemRemoved{ProductID: productID})

	return s.cartOverview()
}

func (s *service) updateCartQuantity(c context.Context, productID string, quantity int) CartOverview {
	s.logger.Log(c, productID, mylog.SeverityInfo, "Update quantity of product %s to %d", productID, quantity)

	s.basketStore.UpdateCartQuantity(c, productID, quantity)

	s.publish(c, shoppingevents.CartQuantityUpdated{ProductID: productID, Quantity: quantity})

	return s.cartOverview()
}

func (s *service) toggleWishlist(c context.Context, productID string) (WishlistOverview, error) {
	s.logger.Log(c, productID, mylog.SeverityInfo, "Toggle product %s on wishlist", productID)

	product, found, err := s.catalog.ProductByID(c, productID)
	if err != nil {
		return WishlistOverview{}, myerrors.NewInternalError(err)
	}
	if !found {
		return WishlistOverview{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productID))
	}

	inWishlist := s.basketStore.ToggleWishlist(c, product)

	s.publish(c, shoppingevents.WishlistToggled{ProductID: productID, InWishlist: inWishlist})

	return s.wishlistOverview(), nil
}

func (s *service) removeFromWishlist(c context.Context, productID string) WishlistOverview {
	s.logger.Log(c, productID, mylog.SeverityInfo, "Remove product %s from wishlist", productID)

	s.basketStore.RemoveFromWishlist(c, productID)

	return s.wishlistOverview()
}

func (s *service) moveToCart(c context.Context, productID string) CartOverview {
	s.logger.Log(c, productID, mylog.SeverityInfo, "Move product %s from wishlist to cart", productID)

	s.basketStore.MoveToCart(c, productID)

	s.publish(c, shoppingevents.WishlistItemMoved{ProductID: productID, ToCart: true})

	return s.cartOverview()
}

func (s *service) moveToWishlist(c context.Context, productID string) WishlistOverview {
	s.logger.Log(c, productID, mylog.SeverityInfo, "Move product %s from cart to wishlist", productID)

	s.basketStore.MoveToWishlist(c, productID)

	s.publish(c, shoppingevents.WishlistItemMoved{ProductID: productID, ToCart: false})

	return s.wishlistOverview()
}

// OnCheckoutCompleted empties the cart once an order has been placed.
func (s *service) OnCheckoutCompleted(c context.Context, topic string, event checkoutevents.CheckoutCompleted) error {
	s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Checkout of order %s completed -> clearing cart", event.OrderUID)

	s.basketStore.ClearCart(c)

	s.publish(c, shoppingevents.CartCleared{OrderUID: event.OrderUID})

	return nil
}

// Basket mutations never fail towards the caller: a publication problem is
// logged and the in-memory mutation stands.
func (s *service) publish(c context.Context, event myevents.Event) {
	err := s.publisher.Publish(c, shoppingevents.TopicName, event)
	if err != nil {
		s.logger.Log(c, event.GetAggregateName(), mylog.SeverityWarn, "Error publishing %s: %s", event.GetEventTypeName(), err)
	}
}
