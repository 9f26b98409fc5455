package merge

import (
	"fmt"

	"bmmerge/internal/bookmark"
)

// resolveDeletions reviews secondary-only elements, the ones that exist in
// the older file but not the newer one, and asks whether each was deleted
// on purpose. Non-interactive runs skip the phase, keeping everything.
// Elements whose parent folder is itself gone are cascaded without a
// prompt, and elements that already won a duplicate decision are not asked
// about again.
func (en *Engine) resolveDeletions() error {
	if !en.opts.Interactive {
		return nil
	}
	for _, key := range en.idx.Keys() {
		entry := en.idx.Lookup(key)
		for _, el := range entry.Secondary {
			if el == nil || !el.IsSaved() || el.SuppressPrompt {
				continue
			}
			gone, err := en.parentDeleted(el)
			if err != nil {
				return err
			}
			if gone {
				en.log.Debugf(2, "cascading delete of %s, parent folder gone", el)
				el.State = bookmark.StateDeleted
				continue
			}
			del, err := en.dec.ConfirmDelete(el)
			if err != nil {
				return err
			}
			if del {
				el.State = bookmark.StateDeleted
			}
		}
	}
	return nil
}

// parentDeleted reports whether el's parent folder is absent from the
// merge. An unindexed parent counts as deleted; a parent present in both
// sources counts as kept.
func (en *Engine) parentDeleted(el *bookmark.Element) (bool, error) {
	entry := en.idx.Lookup(el.ParentPath)
	if entry == nil {
		return true, nil
	}
	if len(entry.Both) != 0 {
		return false, nil
	}
	var folder *bookmark.Element
	for _, cand := range entry.Secondary {
		if cand == nil {
			continue
		}
		if folder != nil {
			return false, fmt.Errorf("multiple secondary candidates for parent folder %q of %s", el.ParentPath, el)
		}
		folder = cand
	}
	if folder == nil || !folder.IsFolder() {
		return false, fmt.Errorf("no secondary folder candidate for parent %q of %s", el.ParentPath, el)
	}
	return folder.IsDeleted(), nil
}
