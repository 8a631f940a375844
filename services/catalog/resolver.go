package catalog

import (
	"context"

	"github.com/sereneshop/storefront/lib/myerrors"
	"github.com/sereneshop/storefront/lib/mystore"
	"github.com/sereneshop/storefront/services/shopping"
)

// Resolver lets the basket look up catalog records without going through
// the web layer.
type Resolver struct {
	productStore mystore.Store[Product]
}

func NewResolver(store mystore.Store[Product]) *Resolver {
	return &Resolver{
		productStore: store,
	}
}

func (r *Resolver) ProductByID(c context.Context, productID string) (shopping.Product, bool, error) {
	product, found, err := r.productStore.Get(c, productID)
	if err != nil {
		return shopping.Product{}, false, myerrors.NewInternalError(err)
	}
	if !found {
		return shopping.Product{}, false, nil
	}

	return product.Snapshot(), true, nil
}
