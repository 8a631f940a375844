package shopping

import (
	"context"

	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/lib/mypublisher"
	"github.com/sereneshop/storefront/lib/mypubsub"
)

// Catalog supplies read-only product records. The basket never writes back.
//
//go:generate mockgen -source=service.go -package shopping -destination catalog_mock.go Catalog
type Catalog interface {
	ProductByID(c context.Context, productID string) (Product, bool, error)
}

type service struct {
	basketStore *BasketStore
	catalog     Catalog
	subscriber  mypubsub.PubSub
	publisher   mypublisher.Publisher
	logger      mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(basketStore *BasketStore, catalog Catalog, subscriber mypubsub.PubSub, publisher mypublisher.Publisher, logger mylog.Logger) *service {
	return &service{
		basketStore: basketStore,
		catalog:     catalog,
		subscriber:  subscriber,
		publisher:   publisher,
		logger:      logger,
	}
}
