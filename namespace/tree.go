// Package namespace implements the in-memory hierarchical namespace: a tree
// of named nodes addressed by slash-delimited paths, each holding an opaque
// payload and timestamp metadata, plus whole-tree snapshot encoding.
package namespace

import (
	"fmt"
	"strings"
	"time"

	"github.com/treestore-io/treestore"
	"github.com/treestore-io/treestore/internal/util"
)

// Tree owns the root of a namespace and exposes the mutation and lookup API.
//
// A Tree is single-writer and fully synchronous: it performs no internal
// locking, and callers that share an instance across goroutines must
// serialize access externally (or use SafeTree, which wraps every operation
// in one coarse lock). Every operation resolves a path, performs one
// localized mutation or read, and returns.
type Tree struct {
	root *Node
	now  func() time.Time // swapped out by tests for a deterministic clock
}

// NewTree creates an empty tree whose root is addressed by the path "/".
// The root is the only node not created through Create.
func NewTree() *Tree {
	t := &Tree{now: time.Now}
	t.root = newNode("", nil, t.now())
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the total number of nodes, root included.
func (t *Tree) Len() int {
	n := 0
	t.root.Walk(func(string, *Node) error { // nolint:errcheck // visitor never fails
		n++
		return nil
	})
	return n
}

// Walk visits every node depth-first in sorted child order. See Node.Walk.
func (t *Tree) Walk(fn func(path string, node *Node) error) error {
	return t.root.Walk(fn)
}

// Create inserts a new node at path with the given payload. The parent must
// already exist and the final segment must not collide with an existing
// sibling; on any failure the tree is left unchanged.
func (t *Tree) Create(path string, data []byte) error {
	logger := util.GetLogger("tree.create")

	parent, err := t.root.Resolve(path, 1)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Parent lookup failed")
		return err
	}
	segs := splitPath(path)
	if len(segs) == 0 {
		return fmt.Errorf("%w: %q has no final segment", treestore.ErrInvalidPath, path)
	}
	name := segs[len(segs)-1]
	if _, ok := parent.Child(name); ok {
		logger.Debug().Str("path", path).Msg("Node already exists")
		return fmt.Errorf("%w: %q", treestore.ErrAlreadyExists, path)
	}

	parent.addChild(newNode(name, data, t.now()))
	createCount.Inc()
	nodeGauge.Inc()
	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Created node")
	return nil
}

// Remove deletes the node at path together with its entire subtree. Removing
// a node that does not exist fails without side effects; removing "/" always
// fails because the root is not a keyed child of anything.
func (t *Tree) Remove(path string) error {
	logger := util.GetLogger("tree.remove")

	parent, err := t.root.Resolve(path, 1)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Parent lookup failed")
		return err
	}
	segs := splitPath(path)
	if len(segs) == 0 {
		return fmt.Errorf("%w: %q has no final segment", treestore.ErrInvalidPath, path)
	}
	name := segs[len(segs)-1]

	child, ok := parent.Child(name)
	if !ok {
		logger.Debug().Str("path", path).Msg("No matching child")
		return fmt.Errorf("%w: %q", treestore.ErrNotFound, path)
	}
	removed := 1 + countDescendants(child)
	parent.removeChild(name)
	removeCount.Inc()
	nodeGauge.Sub(float64(removed))
	logger.Debug().Str("path", path).Int("nodes", removed).Msg("Removed subtree")
	return nil
}

// SetData overwrites the payload of the node at path and bumps its
// modification time. ModifiedAt is strictly monotonic: when the wall clock
// has not advanced past the previous write, the new stamp is clamped one
// nanosecond ahead of it. CreatedAt is never touched. Works on the root.
func (t *Tree) SetData(path string, data []byte) error {
	node, err := t.root.Resolve(path, 0)
	if err != nil {
		logger := util.GetLogger("tree.setdata")
		logger.Debug().Err(err).Str("path", path).Msg("Lookup failed")
		return err
	}
	now := t.now()
	if !now.After(node.modifiedAt) {
		now = node.modifiedAt.Add(time.Nanosecond)
	}
	node.data = data
	node.modifiedAt = now
	setDataCount.Inc()
	return nil
}

// GetNodeInfo returns the summary of the node at path.
func (t *Tree) GetNodeInfo(path string) (*treestore.NodeInfo, error) {
	node, err := t.root.Resolve(path, 0)
	if err != nil {
		return nil, err
	}
	info := node.Info()
	return &info, nil
}

// GetNode returns the summary plus payload of the node at path.
func (t *Tree) GetNode(path string) (*treestore.NodeData, error) {
	node, err := t.root.Resolve(path, 0)
	if err != nil {
		return nil, err
	}
	return &treestore.NodeData{NodeInfo: node.Info(), Data: node.data}, nil
}

// GetChildren returns the summary of the node at path plus its child names,
// sorted and comma-joined.
func (t *Tree) GetChildren(path string) (*treestore.ChildListing, error) {
	node, err := t.root.Resolve(path, 0)
	if err != nil {
		return nil, err
	}
	names := node.ChildNames()
	return &treestore.ChildListing{
		NodeInfo: node.Info(),
		Children: names,
		Joined:   strings.Join(names, treestore.ChildSep),
	}, nil
}

// Info returns the node's own summary, the "no path given" form of
// GetNodeInfo.
func (n *Node) Info() treestore.NodeInfo {
	return treestore.NodeInfo{
		Name:       n.name,
		CreatedAt:  n.createdAt,
		ModifiedAt: n.modifiedAt,
		NumChild:   len(n.children),
	}
}

func countDescendants(n *Node) int {
	total := 0
	for _, child := range n.children {
		total += 1 + countDescendants(child)
	}
	return total
}
