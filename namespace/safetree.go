package namespace

import (
	"sync"

	"github.com/treestore-io/treestore"
)

// SafeTree wraps a Tree with one coarse reader/writer lock around each
// public operation, for callers that cannot guarantee the single-writer
// precondition themselves. The data model is unchanged: operations are
// serialized wholesale, there is no per-node locking and no versioning.
type SafeTree struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewSafeTree wraps tree. The caller must not keep using tree directly.
func NewSafeTree(tree *Tree) *SafeTree {
	return &SafeTree{tree: tree}
}

func (s *SafeTree) Create(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Create(path, data)
}

func (s *SafeTree) Remove(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Remove(path)
}

func (s *SafeTree) SetData(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.SetData(path, data)
}

func (s *SafeTree) GetNodeInfo(path string) (*treestore.NodeInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.GetNodeInfo(path)
}

func (s *SafeTree) GetNode(path string) (*treestore.NodeData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.GetNode(path)
}

func (s *SafeTree) GetChildren(path string) (*treestore.ChildListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.GetChildren(path)
}

func (s *SafeTree) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

// Snapshot serializes the wrapped tree while holding the read lock, so the
// byte stream reflects one consistent instant.
func (s *SafeTree) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Snapshot()
}
