package merge

import (
	"bmmerge/internal/bookmark"
	"bmmerge/internal/tree"
)

// Collection is the per-source view of one input file: the ingestion log in
// document order plus the hierarchy rebuilt from it. Ordered holds the
// elements as the index returned them, so a promoted element appears in the
// log of the source that triggered the promotion.
type Collection struct {
	Source  bookmark.Source
	Ordered []*bookmark.Element
	Tree    *tree.Tree
}

func newCollection(source bookmark.Source) *Collection {
	return &Collection{
		Source: source,
		Tree:   tree.New(bookmark.NewRoot(source)),
	}
}
