package shoppingevents

const (
	TopicName               = "basket"
	cartItemAddedName       = TopicName + ".cart.item.added"
	cartItemRemovedName     = TopicName + ".cart.item.removed"
	cartQuantityUpdatedName = TopicName + ".cart.quantity.updated"
	cartClearedName         = TopicName + ".cart.cleared"
	wishlistToggledName     = TopicName + ".wishlist.toggled"
	wishlistItemMovedName   = TopicName + ".wishlist.item.moved"
)

type CartItemAdded struct {
	ProductID string
	Quantity  int
}

func (e CartItemAdded) GetEventTypeName() string {
	return cartItemAddedName
}

func (e CartItemAdded) GetAggregateName() string {
	return e.ProductID
}

type CartItemRemoved struct {
	ProductID string
}

func (e CartItemRemoved) GetEventTypeName() string {
	return cartItemRemovedName
}

func (e CartItemRemoved) GetAggregateName() string {
	return e.ProductID
}

type CartQuantityUpdated struct {
	ProductID string
	Quantity  int
}

func (e CartQuantityUpdated) GetEventTypeName() string {
	return cartQuantityUpdatedName
}

func (e CartQuantityUpdated) GetAggregateName() string {
	return e.ProductID
}

type CartCleared struct {
	OrderUID string
}

func (e CartCleared) GetEventTypeName() string {
	return cartClearedName
}

func (e CartCleared) GetAggregateName() string {
	return e.OrderUID
}

type WishlistToggled struct {
	ProductID  string
	InWishlist bool
}

func (e WishlistToggled) GetEventTypeName() string {
	return wishlistToggledName
}

func (e WishlistToggled) GetAggregateName() string {
	return e.ProductID
}

type WishlistItemMoved struct {
	ProductID string
	ToCart    bool
}

func (e WishlistItemMoved) GetEventTypeName() string {
	return wishlistItemMovedName
}

func (e WishlistItemMoved) GetAggregateName() string {
	return e.ProductID
}
