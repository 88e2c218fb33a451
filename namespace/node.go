package namespace

import (
	"sort"
	"time"
)

// Node is one entry in the namespace: an immutable name, an opaque payload,
// creation/modification timestamps, and an owned map of children keyed by
// name. A parent exclusively owns its children; removing a node removes its
// entire subtree.
type Node struct {
	name       string // last path segment; never renamed
	parent     *Node  // traversal bookkeeping only; nil for root and detached nodes
	data       []byte
	createdAt  time.Time
	modifiedAt time.Time
	children   map[string]*Node
}

// newNode constructs a node with createdAt == modifiedAt == now.
// Children map is initialized non-nil so child inserts never hit a nil map.
func newNode(name string, data []byte, now time.Time) *Node {
	return &Node{
		name:       name,
		data:       data,
		createdAt:  now,
		modifiedAt: now,
		children:   map[string]*Node{},
	}
}

// Name returns the node's immutable name. The root's name is empty.
func (n *Node) Name() string {
	return n.name
}

// Data returns the node's payload.
func (n *Node) Data() []byte {
	return n.data
}

// CreatedAt returns the timestamp fixed at construction.
func (n *Node) CreatedAt() time.Time {
	return n.createdAt
}

// ModifiedAt returns the timestamp of the last data write. Structural
// changes to children do not touch it.
func (n *Node) ModifiedAt() time.Time {
	return n.modifiedAt
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns a direct child by name.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

// ChildNames returns the names of the direct children, lexicographically
// sorted. Sorting is a contract: callers must see a deterministic listing
// independent of map iteration order.
func (n *Node) ChildNames() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// addChild inserts child into the children map and sets its parent ref.
// Caller is responsible for the uniqueness check.
func (n *Node) addChild(child *Node) {
	n.children[child.name] = child
	child.parent = n
}

// removeChild detaches the named child and its whole subtree. Returns false
// if no child has that name.
func (n *Node) removeChild(name string) bool {
	child, ok := n.children[name]
	if !ok {
		return false
	}
	delete(n.children, name)
	child.parent = nil
	return true
}

// Walk visits the node and every descendant depth-first, children in sorted
// name order. The visitor receives each node's slash-joined path relative to
// the walk origin ("" for the origin itself). Walk stops at the first error.
func (n *Node) Walk(fn func(path string, node *Node) error) error {
	return n.walk("", fn)
}

func (n *Node) walk(path string, fn func(string, *Node) error) error {
	if err := fn(path, n); err != nil {
		return err
	}
	for _, name := range n.ChildNames() {
		childPath := name
		if path != "" {
			childPath = path + "/" + name
		}
		if err := n.children[name].walk(childPath, fn); err != nil {
			return err
		}
	}
	return nil
}
