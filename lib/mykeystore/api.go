package mykeystore

import (
	"context"
	"os"
)

// KeyStore stores whole JSON documents under string keys, the way a browser's
// local storage does. Documents are always rewritten in full, never patched.
//
//go:generate mockgen -source=api.go -package mykeystore -destination keystore_mock.go KeyStore
type KeyStore interface {
	Load(c context.Context, key string) ([]byte, bool, error)
	Save(c context.Context, key string, data []byte) error
	Delete(c context.Context, key string) error
}

func New(c context.Context) (KeyStore, func(), error) {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		return newGcloudKeyStore(c)
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return newFileKeyStore(dir)
	}

	return NewInMemoryKeyStore()
}
