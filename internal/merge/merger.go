package merge

import (
	"bmmerge/internal/bookmark"
	"bmmerge/internal/index"
	"bmmerge/internal/tree"
)

// mergeTree walks one source hierarchy in document order and copies every
// still-Saved element into the merged tree, marking it Handled. The primary
// tree is walked first, so shared elements land in their primary position
// and the later secondary walk finds them already Handled. Positions whose
// element lost a duplicate decision are filled by the winning counterpart
// looked up through the index.
func (en *Engine) mergeTree(root *tree.Node) error {
	for _, child := range root.Children {
		use, err := en.elementToUse(child.Element)
		if err != nil {
			return err
		}
		if use != nil && use.IsSaved() {
			if err := en.merged.Insert(use, bookmark.SplitPath(use.ParentPath)); err != nil {
				return err
			}
			use.State = bookmark.StateHandled
			en.log.Debugf(3, "merged %s", use)
		}
		if child.Element.IsFolder() {
			if err := en.mergeTree(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// elementToUse maps a tree position to the element that should occupy it in
// the merged output. Positions untouched by duplicate resolution map to the
// element itself. Positions inside a resolved duplicate group map to their
// positional counterpart when the element itself lost the decision, falling
// back to the first Saved candidate under the same key.
func (en *Engine) elementToUse(el *bookmark.Element) (*bookmark.Element, error) {
	entry := en.idx.Lookup(el.PathKey())
	if entry == nil {
		return el, nil
	}
	if len(entry.Primary) == 0 && len(entry.Secondary) == 0 {
		return el, nil
	}
	if len(entry.Both) == 0 && (len(entry.Primary) == 0 || len(entry.Secondary) == 0) {
		return el, nil
	}
	if el.IsFolder() {
		return nil, &index.DuplicateFolderError{Key: el.PathKey(), Source: el.Source}
	}

	search, other := entry.Primary, entry.Secondary
	if el.Source != bookmark.SourcePrimary {
		search, other = entry.Secondary, entry.Primary
	}
	if len(entry.Primary) == len(entry.Secondary) {
		for i, cand := range search {
			if cand == nil || !cand.Equal(el) || cand.Text != el.Text {
				continue
			}
			if cand.IsSaved() {
				return cand, nil
			}
			if o := other[i]; o != nil && o.IsSaved() {
				return o, nil
			}
			break
		}
	}
	for _, list := range [][]*bookmark.Element{entry.Both, entry.Primary, entry.Secondary} {
		for _, cand := range list {
			if cand != nil && cand.IsSaved() {
				return cand, nil
			}
		}
	}
	return nil, nil
}
