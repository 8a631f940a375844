package shopping

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/sereneshop/storefront/lib/mycontext"
	"github.com/sereneshop/storefront/lib/myerrors"
	"github.com/sereneshop/storefront/lib/myhttp"
	"github.com/sereneshop/storefront/services/checkout/checkoutevents"
	"github.com/sereneshop/storefront/services/shopping/shoppingevents"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// Cart
	router.HandleFunc("/cart", s.cartPage()).Methods("GET")
	router.HandleFunc("/cart", s.addToCartPage()).Methods("POST")
	router.HandleFunc("/cart/{productUID}/quantity/{quantity}", s.updateQuantityPage()).Methods("PUT")
	router.HandleFunc("/cart/{productUID}/wishlist", s.moveToWishlistPage()).Methods("PUT")
	router.HandleFunc("/cart/{productUID}", s.removeFromCartPage()).Methods("DELETE")

	// Wishlist
	router.HandleFunc("/wishlist", s.wishlistPage()).Methods("GET")
	router.HandleFunc("/wishlist/{productUID}/toggle", s.toggleWishlistPage()).Methods("POST")
	router.HandleFunc("/wishlist/{productUID}/cart", s.moveToCartPage()).Methods("PUT")
	router.HandleFunc("/wishlist/{productUID}", s.removeFromWishlistPage()).Methods("DELETE")

	// Checkout component will push events here once an order is placed
	router.HandleFunc("/api/basket/event", s.eventPage()).Methods("POST")

	err := s.publisher.CreateTopic(c, shoppingevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", shoppingevents.TopicName, err)
	}

	err = s.subscriber.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	err = s.subscriber.Subscribe(c, checkoutevents.TopicName, hostnameWithScheme()+"/api/basket/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

func (s *service) cartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.cartOverview())
	}
}

type addToCartForm struct {
	ProductUID string `form:"productUid"`
	Quantity   int    `form:"quantity"`
}

func (s *service) addToCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		request := addToCartForm{}
		err = formcodec.NewDecoder().Decode(&request, r.Form)
		if err != nil {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("error decoding form: %s", err))
			return
		}
		if request.ProductUID == "" {
			responseWriter.WriteError(c, w, 3, myerrors.NewInvalidInputErrorf("missing productUid"))
			return
		}

		overview, err := s.addToCart(c, request.ProductUID, request.Quantity)
		if err != nil {
			responseWriter.WriteError(c, w, 4, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, overview)
	}
}

func (s *service) updateQuantityPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]
		quantity, err := strconv.Atoi(mux.Vars(r)["quantity"])
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("quantity is not numeric: %s", err))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, s.updateCartQuantity(c, productUID, quantity))
	}
}

func (s *service) removeFromCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		responseWriter.Write(c, w, http.StatusOK, s.removeFromCart(c, productUID))
	}
}

func (s *service) moveToWishlistPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		responseWriter.Write(c, w, http.StatusOK, s.moveToWishlist(c, productUID))
	}
}

func (s *service) wishlistPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.wishlistOverview())
	}
}

func (s *service) toggleWishlistPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		overview, err := s.toggleWishlist(c, productUID)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, overview)
	}
}

func (s *service) moveToCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		responseWriter.Write(c, w, http.StatusOK, s.moveToCart(c, productUID))
	}
}

func (s *service) removeFromWishlistPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		responseWriter.Write(c, w, http.StatusOK, s.removeFromWishlist(c, productUID))
	}
}

func (s *service) eventPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := checkoutevents.DispatchEvent(c, r.Body, s)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}

func hostnameWithScheme() string {
	if hostname := os.Getenv("PUBLIC_HOSTNAME"); hostname != "" {
		return hostname
	}
	return "http://localhost:8080"
}
