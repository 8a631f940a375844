package mykeystore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type fileKeyStore struct {
	sync.Mutex
	dir string
}

func newFileKeyStore(dir string) (*fileKeyStore, func(), error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating data-dir %s: %s", dir, err)
	}

	return &fileKeyStore{
		dir: dir,
	}, func() {}, nil
}

func (s *fileKeyStore) Load(c context.Context, key string) ([]byte, bool, error) {
	s.Lock()
	defer s.Unlock()

	data, err := os.ReadFile(s.filename(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error reading document %s: %s", key, err)
	}

	return data, true, nil
}

func (s *fileKeyStore) Save(c context.Context, key string, data []byte) error {
	s.Lock()
	defer s.Unlock()

	err := os.WriteFile(s.filename(key), data, 0o644)
	if err != nil {
		return fmt.Errorf("error writing document %s: %s", key, err)
	}

	return nil
}

func (s *fileKeyStore) Delete(c context.Context, key string) error {
	s.Lock()
	defer s.Unlock()

	err := os.Remove(s.filename(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing document %s: %s", key, err)
	}

	return nil
}

func (s *fileKeyStore) filename(key string) string {
	// Keys are simple identifiers; keep path separators out of the filename
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, safe+".json")
}
