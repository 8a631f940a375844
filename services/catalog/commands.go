package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/sereneshop/storefront/lib/myerrors"
	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/services/catalog/catalogevents"
	"github.com/sereneshop/storefront/services/catalog/catalogquery"
)

type ProductListing struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

// seedWhenEmpty loads the default products into an empty catalog.
func (s *service) seedWhenEmpty(c context.Context) error {
	return s.productStore.RunInTransaction(c, func(c context.Context) error {
		existing, err := s.productStore.List(c)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if len(existing) > 0 {
			return nil
		}

		s.logger.Log(c, "", mylog.SeverityInfo, "Seeding catalog with default products")

		for _, p := range defaultProducts() {
			err = s.productStore.Put(c, p.UID, p)
			if err != nil {
				return myerrors.NewInternalError(err)
			}
		}
		return nil
	})
}

func (s *service) listProducts(c context.Context, category string, filter catalogquery.Filter, sortKey catalogquery.SortKey) (ProductListing, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch products (category=%s, sort=%s)", category, sortKey)

	products, err := s.productStore.List(c)
	if err != nil {
		return ProductListing{}, myerrors.NewInternalError(err)
	}

	// The store returns entities in arbitrary order. The catalog's source
	// order is oldest first, so the engine's featured sort is meaningful.
	sort.Slice(products, func(i, j int) bool {
		if !products[i].DateAdded.Equal(products[j].DateAdded) {
			return products[i].DateAdded.Before(products[j].DateAdded)
		}
		return products[i].UID < products[j].UID
	})

	if category != "" {
		kept := []Product{}
		for _, p := range products {
			if p.Category == category {
				kept = append(kept, p)
			}
		}
		products = kept
	}

	result := catalogquery.Query(products, filter, sortKey)

	return ProductListing{
		Products: result,
		Count:    len(result),
	}, nil
}

func (s *service) getProduct(c context.Context, productUID string) (Product, error) {
	s.logger.Log(c, productUID, mylog.SeverityInfo, "Fetch details of product uid %s", productUID)

	product, found, err := s.productStore.Get(c, productUID)
	if err != nil {
		return Product{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
	}

	return product, nil
}

func (s *service) addProduct(c context.Context, product Product) (Product, error) {
	product.UID = s.uuider.Create()
	product.DateAdded = s.nower.Now()

	s.logger.Log(c, product.UID, mylog.SeverityInfo, "Adding product with uid %s", product.UID)

	err := s.productStore.RunInTransaction(c, func(c context.Context) error {
		err := s.productStore.Put(c, product.UID, product)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.ProductAdded{
			ProductUID: product.UID,
			Category:   product.Category,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Product{}, err
	}

	return product, nil
}

func (s *service) updateProduct(c context.Context, productUID string, updated Product) (Product, error) {
	s.logger.Log(c, productUID, mylog.SeverityInfo, "Updating product with uid %s", productUID)

	var product Product
	err := s.productStore.RunInTransaction(c, func(c context.Context) error {
		existing, found, err := s.productStore.Get(c, productUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
		}

		// Identity and age of the record are immutable
		product = updated
		product.UID = existing.UID
		product.DateAdded = existing.DateAdded

		err = s.productStore.Put(c, productUID, product)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.ProductUpdated{
			ProductUID: productUID,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Product{}, err
	}

	return product, nil
}

func (s *service) deleteProduct(c context.Context, productUID string) error {
	s.logger.Log(c, productUID, mylog.SeverityInfo, "Deleting product with uid %s", productUID)

	return s.productStore.RunInTransaction(c, func(c context.Context) error {
		_, found, err := s.productStore.Get(c, productUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
		}

		err = s.productStore.Delete(c, productUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.ProductDeleted{
			ProductUID: productUID,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
}
