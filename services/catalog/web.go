package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/sereneshop/storefront/lib/mycontext"
	"github.com/sereneshop/storefront/lib/myerrors"
	"github.com/sereneshop/storefront/lib/myhttp"
	"github.com/sereneshop/storefront/services/catalog/catalogevents"
	"github.com/sereneshop/storefront/services/catalog/catalogquery"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// Read side
	router.HandleFunc("/products", s.listProductsPage()).Methods("GET")
	router.HandleFunc("/products/{productUID}", s.productPage()).Methods("GET")

	// Admin
	router.HandleFunc("/products", s.addProductPage()).Methods("POST")
	router.HandleFunc("/products/{productUID}", s.updateProductPage()).Methods("PUT")
	router.HandleFunc("/products/{productUID}", s.deleteProductPage()).Methods("DELETE")

	err := s.publisher.CreateTopic(c, catalogevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", catalogevents.TopicName, err)
	}

	err = s.seedWhenEmpty(c)
	if err != nil {
		return fmt.Errorf("error seeding catalog: %s", err)
	}

	return nil
}

// Every query param other than these acts as a facet constraint.
var reservedParams = map[string]bool{
	"category": true,
	"sort":     true,
	"priceMin": true,
	"priceMax": true,
}

func (s *service) listProductsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		params := r.URL.Query()

		filter := catalogquery.NewFilter()
		if raw := params.Get("priceMin"); raw != "" {
			min, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("priceMin is not numeric: %s", err))
				return
			}
			filter.PriceMin = min
		}
		if raw := params.Get("priceMax"); raw != "" {
			max, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("priceMax is not numeric: %s", err))
				return
			}
			filter.PriceMax = max
		}
		for name, values := range params {
			if reservedParams[name] {
				continue
			}
			for _, value := range values {
				filter = filter.ToggleFacet(name, value)
			}
		}

		listing, err := s.listProducts(c, params.Get("category"), filter, catalogquery.ParseSortKey(params.Get("sort")))
		if err != nil {
			responseWriter.WriteError(c, w, 3, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, listing)
	}
}

func (s *service) productPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		product, err := s.getProduct(c, mux.Vars(r)["productUID"])
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, product)
	}
}

type productForm struct {
	Name        string            `form:"name"`
	Description string            `form:"description"`
	Price       int               `form:"price"`
	Image       string            `form:"image"`
	Category    string            `form:"category"`
	Badge       string            `form:"badge"`
	InStock     bool              `form:"inStock"`
	StockCount  int               `form:"stockCount"`
	Featured    bool              `form:"featured"`
	Bestseller  bool              `form:"bestseller"`
	Rating      float64           `form:"rating"`
	RatingCount int               `form:"ratingCount"`
	Attributes  map[string]string `form:"attributes"`
}

func (f productForm) toProduct() Product {
	return Product{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Image:       f.Image,
		Category:    f.Category,
		Badge:       f.Badge,
		InStock:     f.InStock,
		StockCount:  f.StockCount,
		Featured:    f.Featured,
		Bestseller:  f.Bestseller,
		Rating:      f.Rating,
		RatingCount: f.RatingCount,
		Attributes:  f.Attributes,
	}
}

func parseProductForm(r *http.Request) (productForm, error) {
	form := productForm{}

	err := r.ParseForm()
	if err != nil {
		return form, myerrors.NewInvalidInputError(err)
	}

	err = formcodec.NewDecoder().Decode(&form, r.Form)
	if err != nil {
		return form, myerrors.NewInvalidInputErrorf("error decoding form: %s", err)
	}
	if form.Name == "" {
		return form, myerrors.NewInvalidInputErrorf("missing name")
	}
	if form.Category == "" {
		return form, myerrors.NewInvalidInputErrorf("missing category")
	}
	if form.Price < 0 {
		return form, myerrors.NewInvalidInputErrorf("price must not be negative")
	}

	return form, nil
}

func (s *service) addProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		form, err := parseProductForm(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		product, err := s.addProduct(c, form.toProduct())
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, product)
	}
}

func (s *service) updateProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		form, err := parseProductForm(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		product, err := s.updateProduct(c, mux.Vars(r)["productUID"], form.toProduct())
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, product)
	}
}

func (s *service) deleteProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := s.deleteProduct(c, mux.Vars(r)["productUID"])
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}
