package catalogevents

const (
	TopicName          = "catalog"
	productAddedName   = TopicName + ".product.added"
	productUpdatedName = TopicName + ".product.updated"
	productDeletedName = TopicName + ".product.deleted"
)

type ProductAdded struct {
	ProductUID string
	Category   string
}

func (e ProductAdded) GetEventTypeName() string {
	return productAddedName
}

func (e ProductAdded) GetAggregateName() string {
	return e.ProductUID
}

type ProductUpdated struct {
	ProductUID string
}

func (e ProductUpdated) GetEventTypeName() string {
	return productUpdatedName
}

func (e ProductUpdated) GetAggregateName() string {
	return e.ProductUID
}

type ProductDeleted struct {
	ProductUID string
}

func (e ProductDeleted) GetEventTypeName() string {
	return productDeletedName
}

func (e ProductDeleted) GetAggregateName() string {
	return e.ProductUID
}
