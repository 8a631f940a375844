package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/sereneshop/storefront/lib/mykeystore"
	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/lib/mypublisher"
	"github.com/sereneshop/storefront/lib/mypubsub"
	"github.com/sereneshop/storefront/lib/myqueue"
	"github.com/sereneshop/storefront/lib/mystore"
	"github.com/sereneshop/storefront/lib/mytime"
	"github.com/sereneshop/storefront/lib/myuuid"
	"github.com/sereneshop/storefront/services/catalog"
	"github.com/sereneshop/storefront/services/checkout"
	"github.com/sereneshop/storefront/services/shopper"
	"github.com/sereneshop/storefront/services/shopping"
	"github.com/sereneshop/storefront/services/warmup"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	keyStore, keyStoreCleanup, err := mykeystore.New(c)
	if err != nil {
		log.Fatalf("Error creating key store: %s", err)
	}
	defer keyStoreCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating event publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	productStore, productStoreCleanup, err := mystore.New[catalog.Product](c)
	if err != nil {
		log.Fatalf("Error creating product store: %s", err)
	}
	defer productStoreCleanup()

	warmup.NewService(productStore).RegisterEndpoints(c, router)

	catalogService := catalog.NewService(productStore, nower, uuider, mylog.New("catalog"), publisher)
	err = catalogService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering catalog service: %s", err)
	}

	basketStore, err := shopping.NewBasketStore(c, keyStore, mylog.New("basketStore"))
	if err != nil {
		log.Fatalf("Error creating basket store: %s", err)
	}

	shoppingService := shopping.NewService(basketStore, catalog.NewResolver(productStore), pubsub, publisher, mylog.New("shopping"))
	err = shoppingService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering shopping service: %s", err)
	}

	accountStore, accountStoreCleanup, err := mystore.New[shopper.Account](c)
	if err != nil {
		log.Fatalf("Error creating account store: %s", err)
	}
	defer accountStoreCleanup()

	shopperService := shopper.NewService(accountStore, keyStore, nower, uuider, mylog.New("shopper"), publisher)
	err = shopperService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering shopper service: %s", err)
	}

	orderStore, orderStoreCleanup, err := mystore.New[checkout.Order](c)
	if err != nil {
		log.Fatalf("Error creating order store: %s", err)
	}
	defer orderStoreCleanup()

	checkoutService := checkout.NewService(orderStore, basketStore, nower, uuider, mylog.New("checkout"), publisher)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout service: %s", err)
	}

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
