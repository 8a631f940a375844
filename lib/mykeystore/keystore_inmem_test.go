package mykeystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyStore(t *testing.T) {
	c := context.TODO()
	s, cleanup, err := NewInMemoryKeyStore()
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Load missing key", func(t *testing.T) {
		_, found, err := s.Load(c, "sereneCart")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Save and load", func(t *testing.T) {
		err := s.Save(c, "sereneCart", []byte(`[{"id":"1"}]`))
		assert.NoError(t, err)

		data, found, err := s.Load(c, "sereneCart")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`[{"id":"1"}]`), data)
	})

	t.Run("Save overwrites in full", func(t *testing.T) {
		err := s.Save(c, "sereneCart", []byte(`[]`))
		assert.NoError(t, err)

		data, found, err := s.Load(c, "sereneCart")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`[]`), data)
	})

	t.Run("Delete", func(t *testing.T) {
		err := s.Delete(c, "sereneCart")
		assert.NoError(t, err)

		_, found, err := s.Load(c, "sereneCart")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Delete missing key is a no-op", func(t *testing.T) {
		err := s.Delete(c, "unknown")
		assert.NoError(t, err)
	})
}
