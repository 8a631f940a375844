package shopper

import (
	"github.com/sereneshop/storefront/lib/mykeystore"
	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/lib/mypublisher"
	"github.com/sereneshop/storefront/lib/mystore"
	"github.com/sereneshop/storefront/lib/mytime"
	"github.com/sereneshop/storefront/lib/myuuid"
)

type service struct {
	accountStore mystore.Store[Account]
	keyStore     mykeystore.KeyStore
	publisher    mypublisher.Publisher
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[Account], keyStore mykeystore.KeyStore, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		accountStore: store,
		keyStore:     keyStore,
		publisher:    pub,
		nower:        nower,
		uuider:       uuider,
		logger:       logger,
	}
}
