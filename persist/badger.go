package persist

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/treestore-io/treestore"
	"github.com/treestore-io/treestore/internal/util"
)

// BadgerStore keeps snapshots in a badger database, one key per snapshot.
type BadgerStore struct {
	db *badger.DB
}

func snapshotKey(name string) []byte {
	return []byte(fmt.Sprintf("snapshot/%s", name))
}

// OpenBadgerStore opens (creating if needed) a badger database at dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	options := badger.DefaultOptions(dir)
	options.Logger = &util.BadgerLogger{}

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", treestore.ErrSnapshotUnavailable, dir, err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStore wraps an already-open database. The caller keeps ownership
// of db; Close on the store closes it.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

func (s *BadgerStore) Save(name string, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey(name), data)
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", treestore.ErrSnapshotUnavailable, name, err)
	}
	logger := util.GetLogger("persist.badger")
	logger.Debug().Str("name", name).Int("bytes", len(data)).Msg("Snapshot written")
	return nil
}

func (s *BadgerStore) Load(name string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey(name))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", treestore.ErrSnapshotUnavailable, name, err)
	}
	return data, nil
}

func (s *BadgerStore) List() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := snapshotKey("")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, string(prefix)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", treestore.ErrSnapshotUnavailable, err)
	}
	return names, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
