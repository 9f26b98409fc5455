package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmmerge/internal/bookmark"
)

func TestInsertAndWalkOrder(t *testing.T) {
	tr := New(bookmark.NewRoot(bookmark.SourcePrimary))

	news := bookmark.NewFolder(bookmark.SourcePrimary, 0, "/", "News", "")
	require.NoError(t, tr.Insert(news, nil))
	require.NoError(t, tr.Insert(bookmark.NewAnchor(bookmark.SourcePrimary, 1, "/News", "https://a.example", "a"), []string{"News"}))
	require.NoError(t, tr.Insert(bookmark.NewAnchor(bookmark.SourcePrimary, 1, "/News", "https://b.example", "b"), []string{"News"}))
	require.NoError(t, tr.Insert(bookmark.NewAnchor(bookmark.SourcePrimary, 0, "/", "https://c.example", "c"), nil))

	var visited []string
	err := tr.Walk(
		func(n *Node) error {
			visited = append(visited, "enter "+n.Element.Pretty())
			return nil
		},
		func(n *Node) error {
			visited = append(visited, "leave "+n.Element.Pretty())
			return nil
		})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"enter News:",
		"enter <https://a.example> a",
		"enter <https://b.example> b",
		"leave News:",
		"enter <https://c.example> c",
	}, visited)
}

func TestInsertMissingAncestor(t *testing.T) {
	tr := New(bookmark.NewRoot(bookmark.SourcePrimary))

	a := bookmark.NewAnchor(bookmark.SourcePrimary, 1, "/Gone", "https://a.example", "a")
	err := tr.Insert(a, []string{"Gone"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing ancestor folder "Gone"`)
}

func TestWalkSiblingDepthMismatch(t *testing.T) {
	tr := New(bookmark.NewRoot(bookmark.SourcePrimary))
	require.NoError(t, tr.Insert(bookmark.NewAnchor(bookmark.SourcePrimary, 0, "/", "https://a.example", "a"), nil))
	require.NoError(t, tr.Insert(bookmark.NewAnchor(bookmark.SourcePrimary, 1, "/", "https://b.example", "b"), nil))

	err := tr.Walk(func(n *Node) error { return nil }, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sibling depth mismatch")
}
