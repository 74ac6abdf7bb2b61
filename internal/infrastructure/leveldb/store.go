package leveldbstore

import (
	"context"
	"errors"
	"fmt"

	"stocksinfo/internal/application"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

var _ application.Settings = (*Store)(nil)

// Store keeps settings in a LevelDB database.
type Store struct {
	db *leveldb.DB
}

// Open opens (creating if needed) the database directory at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// OpenMemory opens a database that lives only for the process lifetime.
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open memory leveldb: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	v, err := s.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	return s.db.Put([]byte(key), value, nil)
}

func (s *Store) Delete(_ context.Context, key string) error {
	return s.db.Delete([]byte(key), nil)
}

func (s *Store) Ping(context.Context) error {
	_, err := s.db.GetProperty("leveldb.stats")
	return err
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
