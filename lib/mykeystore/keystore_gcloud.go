package mykeystore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/datastore"
)

const storedDocumentKind = "StoredDocument"

type storedDocument struct {
	Data []byte `datastore:",noindex"`
}

type gcloudKeyStore struct {
	client *datastore.Client
}

func newGcloudKeyStore(c context.Context) (*gcloudKeyStore, func(), error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	client, err := datastore.NewClient(c, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating datastore-client: %s", err)
	}

	return &gcloudKeyStore{
			client: client,
		}, func() {
			client.Close()
		}, nil
}

func (s *gcloudKeyStore) Load(c context.Context, key string) ([]byte, bool, error) {
	doc := storedDocument{}

	err := s.client.Get(c, datastore.NameKey(storedDocumentKind, key, nil), &doc)
	if err != nil {
		if err == datastore.ErrNoSuchEntity {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error fetching document with key %s: %s", key, err)
	}

	return doc.Data, true, nil
}

func (s *gcloudKeyStore) Save(c context.Context, key string, data []byte) error {
	_, err := s.client.Put(c, datastore.NameKey(storedDocumentKind, key, nil), &storedDocument{Data: data})
	if err != nil {
		return fmt.Errorf("error storing document with key %s: %s", key, err)
	}

	return nil
}

func (s *gcloudKeyStore) Delete(c context.Context, key string) error {
	err := s.client.Delete(c, datastore.NameKey(storedDocumentKind, key, nil))
	if err != nil && err != datastore.ErrNoSuchEntity {
		return fmt.Errorf("error deleting document with key %s: %s", key, err)
	}

	return nil
}
