package bookmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathKey(t *testing.T) {
	folder := NewFolder(SourcePrimary, 1, "/News", "Tech", "")
	assert.Equal(t, "/News/Tech", folder.PathKey())

	anchor := NewAnchor(SourcePrimary, 1, "/News", "https://example.org", "Example")
	assert.Equal(t, "/News@@https://example.org", anchor.PathKey())
}

func TestEqualIgnoresAnchorText(t *testing.T) {
	a := NewAnchor(SourcePrimary, 0, "/", "https://example.org", "old title")
	b := NewAnchor(SourceSecondary, 0, "/", "https://example.org", "new title")
	assert.True(t, a.Equal(b))

	c := NewAnchor(SourceSecondary, 0, "/", "https://other.org", "old title")
	assert.False(t, a.Equal(c))
}

func TestEqualKindAndParentDiscriminate(t *testing.T) {
	folder := NewFolder(SourcePrimary, 0, "/", "News", "")
	anchor := NewAnchor(SourcePrimary, 0, "/", "News", "News")
	assert.False(t, folder.Equal(anchor))

	other := NewFolder(SourceSecondary, 1, "/Archive", "News", "")
	assert.False(t, folder.Equal(other))

	same := NewFolder(SourceSecondary, 0, "/", "News", "")
	assert.True(t, folder.Equal(same))
}

func TestSourceOpposite(t *testing.T) {
	assert.Equal(t, SourceSecondary, SourcePrimary.Opposite())
	assert.Equal(t, SourcePrimary, SourceSecondary.Opposite())
	assert.Panics(t, func() { SourceBoth.Opposite() })
}

func TestNewRoot(t *testing.T) {
	root := NewRoot(SourceBoth)
	assert.True(t, root.IsFolder())
	assert.Equal(t, "/", root.Name)
	assert.Equal(t, -1, root.NestingDepth)
	assert.True(t, root.IsSaved())
}
