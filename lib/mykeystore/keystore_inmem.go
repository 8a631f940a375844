package mykeystore

import (
	"context"
	"sync"
)

type inMemoryKeyStore struct {
	sync.Mutex
	documents map[string][]byte
}

func NewInMemoryKeyStore() (*inMemoryKeyStore, func(), error) {
	return &inMemoryKeyStore{
		documents: map[string][]byte{},
	}, func() {}, nil
}

func (s *inMemoryKeyStore) Load(c context.Context, key string) ([]byte, bool, error) {
	s.Lock()
	defer s.Unlock()

	data, found := s.documents[key]

	return data, found, nil
}

func (s *inMemoryKeyStore) Save(c context.Context, key string, data []byte) error {
	s.Lock()
	defer s.Unlock()

	s.documents[key] = data

	return nil
}

func (s *inMemoryKeyStore) Delete(c context.Context, key string) error {
	s.Lock()
	defer s.Unlock()

	delete(s.documents, key)

	return nil
}
