package shopping

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

	"github.com/sereneshop/storefront/lib/myevents"
	"github.com/sereneshop/storefront/lib/mykeystore"
	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/lib/mypublisher"
	"github.com/sereneshop/storefront/lib/mypubsub"
	"github.com/sereneshop/storefront/lib/mytime"
	"github.com/sereneshop/storefront/services/checkout/checkoutevents"
	"github.com/sereneshop/storefront/services/shopping/shoppingevents"
)

func TestShoppingService(t *testing.T) {

	t.Run("Get empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/cart", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		overview := CartOverview{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &overview))
		assert.Empty(t, overview.Lines)
		assert.Equal(t, 0, overview.ItemCount)
	})

	t.Run("Add product to cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, catalog, publisher := setup(t, ctrl)

		// given
		catalog.EXPECT().ProductByID(gomock.Any(), "1").Return(tote, true, nil)
		publisher.EXPECT().Publish(gomock.Any(), shoppingevents.TopicName,
			shoppingevents.CartItemAdded{ProductID: "1", Quantity: 2}).Return(nil)

		// when
		form := url.Values{}
		form.Set("productUid", "1")
		form.Set("quantity", "2")
		request, err := http.NewRequest(http.MethodPost, "/cart", strings.NewReader(form.Encode()))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		overview := CartOverview{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &overview))
		assert.Len(t, overview.Lines, 1)
		assert.Equal(t, 2, overview.ItemCount)
		assert.Equal(t, float64(30000), overview.TotalPrice)
	})

	t.Run("Add unknown product to cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, catalog, _ := setup(t, ctrl)

		// given
		catalog.EXPECT().ProductByID(gomock.Any(), "unknown").Return(Product{}, false, nil)

		// when
		form := url.Values{}
		form.Set("productUid", "unknown")
		request, err := http.NewRequest(http.MethodPost, "/cart", strings.NewReader(form.Encode()))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Update quantity to zero removes the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, basketStore, _, publisher := setup(t, ctrl)

		// given
		basketStore.AddToCart(c, tote, 2)
		publisher.EXPECT().Publish(gomock.Any(), shoppingevents.TopicName,
			shoppingevents.CartQuantityUpdated{ProductID: "1", Quantity: 0}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPut, "/cart/1/quantity/0", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		overview := CartOverview{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &overview))
		assert.Empty(t, overview.Lines)
	})

	t.Run("Remove product that is not in the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, publisher := setup(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), shoppingevents.TopicName,
			shoppingevents.CartItemRemoved{ProductID: "unknown"}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodDelete, "/cart/unknown", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then: removal of an unknown product is a no-op, not an error
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Toggle wishlist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, catalog, publisher := setup(t, ctrl)

		// given
		catalog.EXPECT().ProductByID(gomock.Any(), "1").Return(tote, true, nil).Times(2)
		publisher.EXPECT().Publish(gomock.Any(), shoppingevents.TopicName,
			shoppingevents.WishlistToggled{ProductID: "1", InWishlist: true}).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), shoppingevents.TopicName,
			shoppingevents.WishlistToggled{ProductID: "1", InWishlist: false}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/wishlist/1/toggle", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		overview := WishlistOverview{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &overview))
		assert.Len(t, overview.Entries, 1)

		// when toggled again
		request, err = http.NewRequest(http.MethodPost, "/wishlist/1/toggle", nil)
		assert.NoError(t, err)
		response = httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then the wishlist is back to its original state
		assert.Equal(t, 200, response.Code)
		overview = WishlistOverview{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &overview))
		assert.Empty(t, overview.Entries)
	})

	t.Run("Move wishlist entry to cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, basketStore, _, publisher := setup(t, ctrl)

		// given
		basketStore.AddToWishlist(c, scarf)
		publisher.EXPECT().Publish(gomock.Any(), shoppingevents.TopicName,
			shoppingevents.WishlistItemMoved{ProductID: "2", ToCart: true}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPut, "/wishlist/2/cart", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		overview := CartOverview{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &overview))
		assert.Len(t, overview.Lines, 1)
		assert.Equal(t, 1, overview.Lines[0].Quantity)
		assert.False(t, basketStore.IsInWishlist("2"))
	})

	t.Run("Handle checkout completed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, basketStore, _, publisher := setup(t, ctrl)

		// given
		basketStore.AddToCart(c, tote, 2)
		publisher.EXPECT().Publish(gomock.Any(), shoppingevents.TopicName,
			shoppingevents.CartCleared{OrderUID: "order-123"}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/basket/event",
			strings.NewReader(createPubsubMessage(checkoutevents.CheckoutCompleted{
				OrderUID:   "order-123",
				TotalPrice: 30000,
				ItemCount:  2,
			})))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Empty(t, basketStore.Cart())
	})
}

func createPubsubMessage(event checkoutevents.CheckoutCompleted) string {
	eventBytes, _ := json.Marshal(event)
	envelope := myevents.EventEnvelope{
		UID:           "123",
		CreatedAt:     mytime.ExampleTime,
		Topic:         "checkout",
		AggregateUID:  event.OrderUID,
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(eventBytes),
	}
	envelopeBytes, _ := json.Marshal(envelope)

	req := myevents.PushRequest{
		Message: myevents.PushMessage{
			Data: envelopeBytes,
		},
		Subscription: "checkout",
	}

	reqBytes, _ := json.Marshal(req)

	return string(reqBytes)
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *BasketStore, *MockCatalog, *mypublisher.MockPublisher) {
	c := context.TODO()

	keyStore, _, _ := mykeystore.NewInMemoryKeyStore()
	basketStore, err := NewBasketStore(c, keyStore, mylog.New("basketStore"))
	assert.NoError(t, err)

	catalog := NewMockCatalog(ctrl)
	subscriber := mypubsub.NewMockPubSub(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	sut := NewService(basketStore, catalog, subscriber, publisher, mylog.New("shopping"))
	router := mux.NewRouter()

	// These are called by the following call to RegisterEndpoints()
	publisher.EXPECT().CreateTopic(c, shoppingevents.TopicName).Return(nil)
	subscriber.EXPECT().CreateTopic(c, checkoutevents.TopicName).Return(nil)
	subscriber.EXPECT().Subscribe(c, checkoutevents.TopicName, "http://localhost:8080/api/basket/event").Return(nil)

	err = sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, basketStore, catalog, publisher
}
