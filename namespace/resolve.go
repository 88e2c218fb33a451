package namespace

import (
	"fmt"
	"strings"

	"github.com/treestore-io/treestore"
)

// splitPath splits a path on "/" and drops empty segments, so "/a//b/" and
// "a/b" normalize identically. The returned slice is empty for "" and "/".
func splitPath(path string) []string {
	parts := strings.Split(path, treestore.PathSep)
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// Resolve locates the node reached by descending from n through each path
// segment, stopping stop segments before the end. stop = 0 resolves the
// target itself; stop = 1 its parent.
//
// The literal path "/" resolves to n itself; any other path that is empty
// after normalization fails with ErrInvalidPath, as does a stop outside
// [0, len(segments)]. A missing segment fails with ErrNotFound. Resolution
// is read-only and never creates nodes.
func (n *Node) Resolve(path string, stop int) (*Node, error) {
	segs := splitPath(path)
	if len(segs) == 0 {
		if path == treestore.PathSep && stop == 0 {
			return n, nil
		}
		return nil, fmt.Errorf("%w: %q", treestore.ErrInvalidPath, path)
	}
	if stop < 0 || stop > len(segs) {
		return nil, fmt.Errorf("%w: stop depth %d out of range for %q", treestore.ErrInvalidPath, stop, path)
	}

	cur := n
	for _, seg := range segs[:len(segs)-stop] {
		child, ok := cur.children[seg]
		if !ok {
			return nil, fmt.Errorf("%w: %q", treestore.ErrNotFound, path)
		}
		cur = child
	}
	return cur, nil
}
