package shopping

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sereneshop/storefront/lib/mykeystore"
	"github.com/sereneshop/storefront/lib/mylog"
)

// Storage layout: one JSON array per collection, rewritten in full after
// every mutation. The key names match the original storefront's local
// storage layout.
const (
	cartKey     = "sereneCart"
	wishlistKey = "sereneWishlist"
)

// ErrNoKeyStore indicates a wiring defect: the basket store was constructed
// without its persistence backend. This is the only loud failure in this
// component; everything else is a no-op.
var ErrNoKeyStore = errors.New("basket store constructed without a key store")

// BasketStore is the sole owner and writer of the cart and wishlist
// collections. The key store is a passive mirror: it is read once at
// construction and rewritten after every mutation, fire-and-forget.
// Within a session the in-memory basket is the source of truth.
type BasketStore struct {
	mutex    sync.Mutex
	keyStore mykeystore.KeyStore
	logger   mylog.Logger
	basket   Basket
}

func NewBasketStore(c context.Context, keyStore mykeystore.KeyStore, logger mylog.Logger) (*BasketStore, error) {
	if keyStore == nil {
		return nil, ErrNoKeyStore
	}

	s := &BasketStore{
		keyStore: keyStore,
		logger:   logger,
	}
	s.basket.Cart = loadCart(c, keyStore)
	s.basket.Wishlist = loadWishlist(c, keyStore)

	return s, nil
}

func (s *BasketStore) AddToCart(c context.Context, p Product, quantity int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.basket.AddToCart(p, quantity)
	s.syncCart(c)
}

func (s *BasketStore) RemoveFromCart(c context.Context, productID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.basket.RemoveFromCart(productID)
	s.syncCart(c)
}

func (s *BasketStore) UpdateCartQuantity(c context.Context, productID string, quantity int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.basket.UpdateCartQuantity(productID, quantity)
	s.syncCart(c)
}

func (s *BasketStore) ClearCart(c context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.basket.ClearCart()
	s.syncCart(c)
}

func (s *BasketStore) AddToWishlist(c context.Context, p Product) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.basket.AddToWishlist(p)
	s.syncWishlist(c)
}

func (s *BasketStore) RemoveFromWishlist(c context.Context, productID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.basket.RemoveFromWishlist(productID)
	s.syncWishlist(c)
}

// ToggleWishlist reports whether the product is on the wishlist afterwards.
func (s *BasketStore) ToggleWishlist(c context.Context, p Product) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	present := s.basket.ToggleWishlist(p)
	s.syncWishlist(c)

	return present
}

func (s *BasketStore) IsInWishlist(productID string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.basket.IsInWishlist(productID)
}

func (s *BasketStore) MoveToCart(c context.Context, productID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.basket.MoveToCart(productID)
	s.syncCart(c)
	s.syncWishlist(c)
}

func (s *BasketStore) MoveToWishlist(c context.Context, productID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.basket.MoveToWishlist(productID)
	s.syncCart(c)
	s.syncWishlist(c)
}

func (s *BasketStore) Cart() []CartLine {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return append([]CartLine{}, s.basket.Cart...)
}

func (s *BasketStore) Wishlist() []WishlistEntry {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return append([]WishlistEntry{}, s.basket.Wishlist...)
}

func (s *BasketStore) CartTotal() float64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.basket.CartTotal()
}

func (s *BasketStore) CartItemCount() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.basket.CartItemCount()
}

// syncCart rewrites the full cart document. A failed write is logged and
// otherwise ignored: memory stays the source of truth for the session.
func (s *BasketStore) syncCart(c context.Context) {
	data, err := json.Marshal(s.basket.Cart)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error serializing cart: %s", err)
		return
	}
	err = s.keyStore.Save(c, cartKey, data)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error syncing cart to storage: %s", err)
	}
}

func (s *BasketStore) syncWishlist(c context.Context) {
	data, err := json.Marshal(s.basket.Wishlist)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error serializing wishlist: %s", err)
		return
	}
	err = s.keyStore.Save(c, wishlistKey, data)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error syncing wishlist to storage: %s", err)
	}
}

// storedLine shadows the embedded numeric price so that documents written by
// older versions of the storefront, where price could be a currency string,
// still load. Missing or unparsable documents load as an empty collection.
type storedLine struct {
	CartLine
	RawPrice any `json:"price"`
}

type storedEntry struct {
	WishlistEntry
	RawPrice any `json:"price"`
}

func loadCart(c context.Context, keyStore mykeystore.KeyStore) []CartLine {
	data, found, err := keyStore.Load(c, cartKey)
	if err != nil || !found {
		return nil
	}

	stored := []storedLine{}
	if json.Unmarshal(data, &stored) != nil {
		return nil
	}

	lines := make([]CartLine, 0, len(stored))
	for _, s := range stored {
		line := s.CartLine
		line.Price = ParsePrice(s.RawPrice)
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		lines = append(lines, line)
	}
	return lines
}

func loadWishlist(c context.Context, keyStore mykeystore.KeyStore) []WishlistEntry {
	data, found, err := keyStore.Load(c, wishlistKey)
	if err != nil || !found {
		return nil
	}

	stored := []storedEntry{}
	if json.Unmarshal(data, &stored) != nil {
		return nil
	}

	entries := make([]WishlistEntry, 0, len(stored))
	for _, s := range stored {
		entry := s.WishlistEntry
		entry.Price = ParsePrice(s.RawPrice)
		entries = append(entries, entry)
	}
	return entries
}
