package namespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treestore-io/treestore"
)

// requireEqualTrees asserts two trees are structurally and semantically
// equal: same names, payloads, timestamps and nesting at every node.
func requireEqualTrees(t *testing.T, want, got *Tree) {
	t.Helper()

	type flat struct {
		path string
		node *Node
	}
	collect := func(tree *Tree) []flat {
		var nodes []flat
		require.NoError(t, tree.Walk(func(path string, node *Node) error {
			nodes = append(nodes, flat{path, node})
			return nil
		}))
		return nodes
	}

	wantNodes := collect(want)
	gotNodes := collect(got)
	require.Len(t, gotNodes, len(wantNodes))
	for i, w := range wantNodes {
		g := gotNodes[i]
		assert.Equal(t, w.path, g.path)
		assert.Equal(t, w.node.Name(), g.node.Name())
		assert.Equal(t, w.node.Data(), g.node.Data())
		assert.True(t, w.node.CreatedAt().Equal(g.node.CreatedAt()), w.path)
		assert.True(t, w.node.ModifiedAt().Equal(g.node.ModifiedAt()), w.path)
		assert.Equal(t, w.node.NumChildren(), g.node.NumChildren())
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	tree, _ := newClockedTree()
	require.NoError(t, tree.Create("/a", []byte("alpha")))
	require.NoError(t, tree.Create("/a/b", []byte("")))
	require.NoError(t, tree.Create("/a/c", []byte("charlie")))
	require.NoError(t, tree.Create("/z", nil))
	require.NoError(t, tree.SetData("/a/c", []byte("charlie2")))
	require.NoError(t, tree.SetData("/", []byte("rootdata")))

	data, err := tree.Snapshot()
	require.NoError(t, err)

	got, err := FromSnapshot(data)
	require.NoError(t, err)
	requireEqualTrees(t, tree, got)

	// The reconstructed tree is fully operational
	require.NoError(t, got.Create("/a/d", []byte("new")))
}

func TestSnapshot_EmptyTree(t *testing.T) {
	tree := NewTree()

	data, err := tree.Snapshot()
	require.NoError(t, err)

	got, err := FromSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	assert.True(t, got.Root().IsRoot())
}

func TestSnapshot_Deterministic(t *testing.T) {
	// Same structure built in different insertion orders encodes the same
	// node sequence (envelope id/saved_at aside).
	left, _ := newClockedTree()
	for _, name := range []string{"/a", "/b", "/c"} {
		require.NoError(t, left.Create(name, nil))
	}
	right, _ := newClockedTree()
	for _, name := range []string{"/c", "/b", "/a"} {
		require.NoError(t, right.Create(name, nil))
	}

	assert.Equal(t, []string{"a", "b", "c"}, encodeChildNames(left))
	assert.Equal(t, []string{"a", "b", "c"}, encodeChildNames(right))
}

func encodeChildNames(tree *Tree) []string {
	rec := encodeNode(tree.Root())
	names := make([]string, 0, len(rec.Children))
	for _, child := range rec.Children {
		names = append(names, child.Name)
	}
	return names
}

func TestFromSnapshot_Corrupt(t *testing.T) {
	cases := map[string]string{
		"not json":          `garbage`,
		"truncated":         `{"format":"treestore-snapshot","version":1,"root":{`,
		"foreign format":    `{"format":"something-else","version":1,"root":{"name":""}}`,
		"missing format":    `{"version":1,"root":{"name":""}}`,
		"unknown version":   `{"format":"treestore-snapshot","version":99,"root":{"name":""}}`,
		"missing root":      `{"format":"treestore-snapshot","version":1}`,
		"empty child name":  `{"format":"treestore-snapshot","version":1,"root":{"name":"","children":[{"name":""}]}}`,
		"slash in name":     `{"format":"treestore-snapshot","version":1,"root":{"name":"","children":[{"name":"a/b"}]}}`,
		"duplicate sibling": `{"format":"treestore-snapshot","version":1,"root":{"name":"","children":[{"name":"a"},{"name":"a"}]}}`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			tree, err := FromSnapshot([]byte(input))
			assert.ErrorIs(t, err, treestore.ErrCorruptSnapshot)
			assert.Nil(t, tree)
		})
	}
}

func TestInspectSnapshot(t *testing.T) {
	tree := buildTestTree(t)

	data, err := tree.Snapshot()
	require.NoError(t, err)

	info, err := InspectSnapshot(data)
	require.NoError(t, err)
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, snapshotVersion, info.Version)
	assert.False(t, info.SavedAt.IsZero())
	assert.Equal(t, 4, info.Nodes)

	// Each snapshot gets a fresh id
	data2, err := tree.Snapshot()
	require.NoError(t, err)
	info2, err := InspectSnapshot(data2)
	require.NoError(t, err)
	assert.NotEqual(t, info.ID, info2.ID)

	_, err = InspectSnapshot([]byte("junk"))
	assert.ErrorIs(t, err, treestore.ErrCorruptSnapshot)
}
