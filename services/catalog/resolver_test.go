package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sereneshop/storefront/lib/mystore"
)

func TestResolver(t *testing.T) {
	c := context.TODO()
	productStore, _, _ := mystore.NewInMemoryStore[Product](c)
	for _, p := range defaultProducts() {
		assert.NoError(t, productStore.Put(c, p.UID, p))
	}
	resolver := NewResolver(productStore)

	t.Run("Resolve existing product", func(t *testing.T) {
		// when
		snapshot, found, err := resolver.ProductByID(c, "1")

		// then
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Sienna Leather Tote", snapshot.Name)
		assert.Equal(t, float64(15000), snapshot.Price)
	})

	t.Run("Resolve unknown product", func(t *testing.T) {
		// when
		_, found, err := resolver.ProductByID(c, "unknown")

		// then
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
