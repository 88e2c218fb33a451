package namespace

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: io.Discard})
	os.Exit(m.Run())
}

func TestNewNode(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := newNode("alpha", []byte("payload"), now)

	assert.Equal(t, "alpha", n.Name())
	assert.Equal(t, []byte("payload"), n.Data())
	assert.True(t, n.CreatedAt().Equal(now))
	assert.True(t, n.ModifiedAt().Equal(now))
	assert.Equal(t, 0, n.NumChildren())

	// Children map must be usable immediately
	n.addChild(newNode("child", nil, now))
	assert.Equal(t, 1, n.NumChildren())
}

func TestNode_AddChild(t *testing.T) {
	now := time.Now()
	parent := newNode("parent", nil, now)
	child := newNode("child", []byte("1"), now)

	parent.addChild(child)

	got, ok := parent.Child("child")
	require.True(t, ok)
	assert.Equal(t, child, got)

	// Parent reference was set
	assert.Equal(t, parent, child.parent)
	assert.False(t, child.IsRoot())
}

func TestNode_RemoveChild(t *testing.T) {
	now := time.Now()
	parent := newNode("parent", nil, now)
	child := newNode("child", nil, now)
	parent.addChild(child)

	require.True(t, parent.removeChild("child"))

	_, ok := parent.Child("child")
	assert.False(t, ok)
	assert.Nil(t, child.parent)

	// Removing again is a failed no-op
	assert.False(t, parent.removeChild("child"))
}

func TestNode_ChildNamesSorted(t *testing.T) {
	now := time.Now()
	parent := newNode("", nil, now)
	for _, name := range []string{"zulu", "alpha", "mike", "bravo"} {
		parent.addChild(newNode(name, nil, now))
	}

	// Sorted regardless of insertion order
	assert.Equal(t, []string{"alpha", "bravo", "mike", "zulu"}, parent.ChildNames())
}

func TestNode_Walk(t *testing.T) {
	now := time.Now()
	root := newNode("", nil, now)
	a := newNode("a", nil, now)
	b := newNode("b", nil, now)
	c := newNode("c", nil, now)
	root.addChild(b)
	root.addChild(a)
	a.addChild(c)

	var paths []string
	err := root.Walk(func(path string, node *Node) error {
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)

	// Depth-first, children in sorted order, origin first with empty path
	assert.Equal(t, []string{"", "a", "a/c", "b"}, paths)
}
