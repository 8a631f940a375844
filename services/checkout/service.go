package checkout

import (
	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/lib/mypublisher"
	"github.com/sereneshop/storefront/lib/mystore"
	"github.com/sereneshop/storefront/lib/mytime"
	"github.com/sereneshop/storefront/lib/myuuid"
	"github.com/sereneshop/storefront/services/shopping"
)

// BasketReader is the view of the basket that checkout needs: it snapshots
// the cart and never mutates it.
//
//go:generate mockgen -source=service.go -package checkout -destination basket_mock.go BasketReader
type BasketReader interface {
	Cart() []shopping.CartLine
	CartTotal() float64
	CartItemCount() int
}

type service struct {
	orderStore mystore.Store[Order]
	basket     BasketReader
	publisher  mypublisher.Publisher
	nower      mytime.Nower
	uuider     myuuid.UUIDer
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[Order], basket BasketReader, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		orderStore: store,
		basket:     basket,
		publisher:  pub,
		nower:      nower,
		uuider:     uuider,
		logger:     logger,
	}
}
