package namespace

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/treestore-io/treestore"
)

// Snapshot format identifiers. The format tag and version are checked before
// any reconstruction so foreign or corrupt input is rejected outright
// instead of yielding a malformed tree.
const (
	snapshotFormat  = "treestore-snapshot"
	snapshotVersion = 1
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// snapshotEnvelope is the self-describing top-level record of a snapshot.
type snapshotEnvelope struct {
	Format  string      `json:"format"`
	Version int         `json:"version"`
	ID      string      `json:"id"`
	SavedAt int64       `json:"saved_at"` // unix nanoseconds
	Root    *nodeRecord `json:"root"`
}

// nodeRecord is the tagged recursive encoding of one node. Children are
// written in sorted name order so equal trees encode identically.
type nodeRecord struct {
	Name       string        `json:"name"`
	Data       []byte        `json:"data,omitempty"`
	CreatedAt  int64         `json:"created_at"`
	ModifiedAt int64         `json:"modified_at"`
	Children   []*nodeRecord `json:"children,omitempty"`
}

// SnapshotInfo describes a snapshot's envelope without reconstructing the
// full tree it carries.
type SnapshotInfo struct {
	ID      string
	Version int
	SavedAt time.Time
	Nodes   int
}

// Snapshot serializes the entire tree into a single self-describing byte
// stream: every node's name, payload, both timestamps, and the nested
// children structure. Each snapshot is stamped with a fresh ID.
func (t *Tree) Snapshot() ([]byte, error) {
	env := snapshotEnvelope{
		Format:  snapshotFormat,
		Version: snapshotVersion,
		ID:      uuid.NewString(),
		SavedAt: t.now().UnixNano(),
		Root:    encodeNode(t.root),
	}
	data, err := json.Marshal(&env)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// FromSnapshot reconstructs a tree from a byte stream produced by Snapshot.
// Input that is not a valid version-1 snapshot fails with ErrCorruptSnapshot
// and no tree is returned.
func FromSnapshot(data []byte) (*Tree, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", treestore.ErrCorruptSnapshot, err)
	}
	if env.Format != snapshotFormat {
		return nil, fmt.Errorf("%w: unrecognized format %q", treestore.ErrCorruptSnapshot, env.Format)
	}
	if env.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", treestore.ErrCorruptSnapshot, env.Version)
	}
	if env.Root == nil {
		return nil, fmt.Errorf("%w: missing root record", treestore.ErrCorruptSnapshot)
	}

	root, err := decodeNode(env.Root, true)
	if err != nil {
		return nil, err
	}
	return &Tree{root: root, now: time.Now}, nil
}

// InspectSnapshot decodes only the envelope metadata of a snapshot.
func InspectSnapshot(data []byte) (*SnapshotInfo, error) {
	tree, err := FromSnapshot(data)
	if err != nil {
		return nil, err
	}
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", treestore.ErrCorruptSnapshot, err)
	}
	return &SnapshotInfo{
		ID:      env.ID,
		Version: env.Version,
		SavedAt: time.Unix(0, env.SavedAt),
		Nodes:   tree.Len(),
	}, nil
}

func encodeNode(n *Node) *nodeRecord {
	rec := &nodeRecord{
		Name:       n.name,
		Data:       n.data,
		CreatedAt:  n.createdAt.UnixNano(),
		ModifiedAt: n.modifiedAt.UnixNano(),
	}
	for _, name := range n.ChildNames() {
		rec.Children = append(rec.Children, encodeNode(n.children[name]))
	}
	return rec
}

func decodeNode(rec *nodeRecord, isRoot bool) (*Node, error) {
	if !isRoot {
		if rec.Name == "" || strings.Contains(rec.Name, treestore.PathSep) {
			return nil, fmt.Errorf("%w: bad node name %q", treestore.ErrCorruptSnapshot, rec.Name)
		}
	}
	n := &Node{
		name:       rec.Name,
		data:       rec.Data,
		createdAt:  time.Unix(0, rec.CreatedAt),
		modifiedAt: time.Unix(0, rec.ModifiedAt),
		children:   map[string]*Node{},
	}
	for _, childRec := range rec.Children {
		if childRec == nil {
			return nil, fmt.Errorf("%w: null child record under %q", treestore.ErrCorruptSnapshot, rec.Name)
		}
		if _, ok := n.children[childRec.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate sibling %q under %q", treestore.ErrCorruptSnapshot, childRec.Name, rec.Name)
		}
		child, err := decodeNode(childRec, false)
		if err != nil {
			return nil, err
		}
		n.addChild(child)
	}
	return n, nil
}
