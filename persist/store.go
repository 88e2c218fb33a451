// Package persist stores whole-tree snapshots. A Store maps snapshot names
// to opaque byte streams; the file and badger backends are interchangeable.
// Persistence is blocking and non-incremental: one snapshot in, one snapshot
// out, no append log and no internal retries.
package persist

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/treestore-io/treestore"
	"github.com/treestore-io/treestore/internal/util"
	"github.com/treestore-io/treestore/namespace"
)

// Store persists named snapshots.
type Store interface {
	// Save writes data under name, fully replacing any prior content.
	Save(name string, data []byte) error
	// Load reads the snapshot saved under name. A missing name fails with
	// ErrSnapshotUnavailable.
	Load(name string) ([]byte, error)
	// List returns the names of all stored snapshots.
	List() ([]string, error)
	Close() error
}

// SaveTree serializes tree and writes it to s under name.
func SaveTree(s Store, name string, tree *namespace.Tree) error {
	data, err := tree.Snapshot()
	if err != nil {
		return err
	}
	return s.Save(name, data)
}

// LoadTree reads the snapshot named name from s and reconstructs its tree.
func LoadTree(s Store, name string) (*namespace.Tree, error) {
	data, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	return namespace.FromSnapshot(data)
}

// Save serializes tree straight to a file at path, fully overwriting any
// prior content. This is the direct save(path) surface; SaveTree with a
// FileStore is the named-snapshot equivalent.
func Save(path string, tree *namespace.Tree) error {
	data, err := tree.Snapshot()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %s: %v", treestore.ErrSnapshotUnavailable, path, err)
	}
	logger := util.GetLogger("persist.save")
	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Snapshot written")
	return nil
}

// Load reads a snapshot file at path and reconstructs its tree. A missing
// file fails with ErrSnapshotUnavailable, unreadable content with
// ErrCorruptSnapshot; no partially reconstructed tree is ever returned.
func Load(path string) (*namespace.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", treestore.ErrSnapshotUnavailable, path, err)
	}
	return namespace.FromSnapshot(data)
}

// FileStore keeps each snapshot as one file under a root directory.
type FileStore struct {
	root string
}

// NewFileStore creates a Store backed by the filesystem. Names map 1:1 to
// relative file paths under root.
func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

func (s *FileStore) Save(name string, data []byte) error {
	path := filepath.Join(s.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", treestore.ErrSnapshotUnavailable, name, err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %s: %v", treestore.ErrSnapshotUnavailable, name, err)
	}
	return nil
}

func (s *FileStore) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", treestore.ErrSnapshotUnavailable, name, err)
	}
	return data, nil
}

func (s *FileStore) List() ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.root {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", treestore.ErrSnapshotUnavailable, err)
	}
	return names, nil
}

func (s *FileStore) Close() error {
	return nil
}

// writeFileAtomic writes via a temp file and rename so a crashed save never
// leaves a truncated snapshot at the destination.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
