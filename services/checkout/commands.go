package checkout

import (
	"context"
	"fmt"
	"sort"

	"github.com/sereneshop/storefront/lib/myerrors"
	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/services/checkout/checkoutevents"
)

func (s *service) placeOrder(c context.Context) (Order, error) {
	lines := s.basket.Cart()
	if len(lines) == 0 {
		return Order{}, myerrors.NewInvalidInputErrorf("cannot checkout an empty cart")
	}

	order := Order{
		UID:        s.uuider.Create(),
		CreatedAt:  s.nower.Now(),
		Lines:      lines,
		TotalPrice: s.basket.CartTotal(),
		ItemCount:  s.basket.CartItemCount(),
		Status:     orderStatusConfirmed,
	}

	s.logger.Log(c, order.UID, mylog.SeverityInfo, "Placing order %s with %d items", order.UID, order.ItemCount)

	err := s.orderStore.RunInTransaction(c, func(c context.Context) error {
		err := s.orderStore.Put(c, order.UID, order)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		// The shopping service clears the cart when it consumes this event
		err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutCompleted{
			OrderUID:   order.UID,
			TotalPrice: order.TotalPrice,
			ItemCount:  order.ItemCount,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Order{}, err
	}

	return order, nil
}

func (s *service) getOrder(c context.Context, orderUID string) (Order, error) {
	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Fetch details of order uid %s", orderUID)

	order, found, err := s.orderStore.Get(c, orderUID)
	if err != nil {
		return Order{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Order{}, myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", orderUID))
	}

	return order, nil
}

func (s *service) listOrders(c context.Context) ([]Order, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch all orders")

	orders, err := s.orderStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
