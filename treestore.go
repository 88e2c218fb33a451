// Package treestore defines the shared types and error taxonomy for the
// in-memory hierarchical namespace. The tree itself lives in the namespace
// package; snapshot storage backends live in persist.
package treestore

import "time"

// PathSep separates segments in a node path. Repeated or surrounding
// separators are ignored during resolution; the literal string "/" addresses
// the node resolution is invoked on (the root at top level).
const PathSep = "/"

// ChildSep joins child names in a ChildListing. Sorting and joining are part
// of the listing contract so clients see a deterministic view regardless of
// insertion order.
const ChildSep = ","

// NodeInfo is the read-only summary of a node returned by lookup operations.
type NodeInfo struct {
	Name       string
	CreatedAt  time.Time
	ModifiedAt time.Time
	NumChild   int
}

// NodeData is a NodeInfo plus the node's payload.
type NodeData struct {
	NodeInfo
	Data []byte
}

// ChildListing is a NodeInfo plus the node's child names, lexicographically
// sorted. Joined holds the same names joined with ChildSep.
type ChildListing struct {
	NodeInfo
	Children []string
	Joined   string
}
