package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sereneshop/storefront/lib/mycontext"
	"github.com/sereneshop/storefront/lib/myhttp"
	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/lib/mystore"
	"github.com/sereneshop/storefront/services/catalog"
)

type webService struct {
	logger       mylog.Logger
	productStore mystore.Store[catalog.Product]
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(productStore mystore.Store[catalog.Product]) *webService {
	return &webService{
		logger:       mylog.New("warmup"),
		productStore: productStore,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

// warmupPage touches the product store so datastore connections are
// established before the first real request arrives.
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		_, err := s.productStore.List(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}
