package catalog

import (
	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/lib/mypublisher"
	"github.com/sereneshop/storefront/lib/mystore"
	"github.com/sereneshop/storefront/lib/mytime"
	"github.com/sereneshop/storefront/lib/myuuid"
)

type service struct {
	productStore mystore.Store[Product]
	publisher    mypublisher.Publisher
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[Product], nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		productStore: store,
		publisher:    pub,
		nower:        nower,
		uuider:       uuider,
		logger:       logger,
	}
}
