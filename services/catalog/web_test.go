package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/lib/mypublisher"
	"github.com/sereneshop/storefront/lib/mystore"
	"github.com/sereneshop/storefront/lib/mytime"
	"github.com/sereneshop/storefront/lib/myuuid"
	"github.com/sereneshop/storefront/services/catalog/catalogevents"
)

func TestCatalogService(t *testing.T) {

	t.Run("List all products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/products", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then: seeded products in source order
		assert.Equal(t, 200, response.Code)
		listing := decodeListing(t, response)
		assert.Equal(t, 4, listing.Count)
		assert.Equal(t, []string{"1", "2", "3", "4"}, uids(listing.Products))
	})

	t.Run("List products by category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/products?category=handbags", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		listing := decodeListing(t, response)
		assert.Equal(t, []string{"1", "4"}, uids(listing.Products))
	})

	t.Run("List products sorted by price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/products?sort=price-low", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then: 2000, 3320, 11250, 15000
		assert.Equal(t, 200, response.Code)
		listing := decodeListing(t, response)
		assert.Equal(t, []string{"2", "4", "3", "1"}, uids(listing.Products))
	})

	t.Run("List products within price range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/products?priceMin=999&priceMax=9999", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		listing := decodeListing(t, response)
		assert.Equal(t, []string{"2", "4"}, uids(listing.Products))
	})

	t.Run("List products by facet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/products?material=leather", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		listing := decodeListing(t, response)
		assert.Equal(t, []string{"1", "4"}, uids(listing.Products))
	})

	t.Run("List products with non-numeric price bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/products?priceMin=abc", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Get product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/products/2", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		product := Product{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &product))
		assert.Equal(t, "Florentine Silk Scarf", product.Name)
		assert.Equal(t, 2000, product.Price)
	})

	t.Run("Get unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/products/unknown", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Add product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, nower, uuider, publisher := setup(t, ctrl)

		// given
		uuider.EXPECT().Create().Return("5")
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName,
			catalogevents.ProductAdded{ProductUID: "5", Category: "belts"}).Return(nil)

		// when
		form := url.Values{}
		form.Set("name", "Milano Leather Belt")
		form.Set("description", "Full-grain leather with brushed buckle")
		form.Set("price", "1800")
		form.Set("category", "belts")
		form.Set("stockCount", "20")
		form.Set("inStock", "true")
		form.Set("attributes[material]", "leather")
		request, err := http.NewRequest(http.MethodPost, "/products", strings.NewReader(form.Encode()))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		product := Product{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &product))
		assert.Equal(t, "5", product.UID)
		assert.Equal(t, mytime.ExampleTime, product.DateAdded)
		assert.Equal(t, "leather", product.Attributes["material"])
	})

	t.Run("Add product without name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		form := url.Values{}
		form.Set("category", "belts")
		form.Set("price", "1800")
		request, err := http.NewRequest(http.MethodPost, "/products", strings.NewReader(form.Encode()))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Update product keeps identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, productStore, _, _, publisher := setup(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName,
			catalogevents.ProductUpdated{ProductUID: "2"}).Return(nil)

		// when
		form := url.Values{}
		form.Set("name", "Florentine Silk Scarf")
		form.Set("description", "Hand-rolled edges with exclusive print")
		form.Set("price", "2500")
		form.Set("category", "scarves")
		request, err := http.NewRequest(http.MethodPut, "/products/2", strings.NewReader(form.Encode()))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		stored, found, err := productStore.Get(c, "2")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2500, stored.Price)
		assert.Equal(t, "2", stored.UID)
		assert.False(t, stored.DateAdded.IsZero())
	})

	t.Run("Update unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		form := url.Values{}
		form.Set("name", "Ghost Product")
		form.Set("category", "watches")
		request, err := http.NewRequest(http.MethodPut, "/products/unknown", strings.NewReader(form.Encode()))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Delete product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, productStore, _, _, publisher := setup(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName,
			catalogevents.ProductDeleted{ProductUID: "3"}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodDelete, "/products/3", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		_, found, err := productStore.Get(c, "3")
		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func decodeListing(t *testing.T, response *httptest.ResponseRecorder) ProductListing {
	listing := ProductListing{}
	assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &listing))
	return listing
}

func uids(products []Product) []string {
	result := []string{}
	for _, p := range products {
		result = append(result, p.UID)
	}
	return result
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[Product], *mytime.MockNower, *myuuid.MockUUIDer, *mypublisher.MockPublisher) {
	c := context.TODO()

	productStore, _, _ := mystore.NewInMemoryStore[Product](c)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	sut := NewService(productStore, nower, uuider, mylog.New("catalog"), publisher)
	router := mux.NewRouter()

	// These are called by the following call to RegisterEndpoints()
	publisher.EXPECT().CreateTopic(c, catalogevents.TopicName).Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, productStore, nower, uuider, publisher
}
