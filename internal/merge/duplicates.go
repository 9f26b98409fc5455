package merge

import (
	"fmt"

	"bmmerge/internal/bookmark"
	"bmmerge/internal/index"
)

// resolveDuplicates pairs same-key candidates by list position and settles
// each pair. A position where a Both element exists shadows its leftover
// single-source counterparts; a position with exactly one single-source
// candidate needs no decision; a position with both asks the Decider which
// survives. Folder keys reaching a decision point indicate corrupt input.
func (en *Engine) resolveDuplicates() error {
	for _, key := range en.idx.Keys() {
		entry := en.idx.Lookup(key)
		if len(entry.Primary) == 0 && len(entry.Secondary) == 0 {
			continue
		}
		if len(entry.Both) == 0 && (len(entry.Primary) == 0 || len(entry.Secondary) == 0) {
			continue
		}
		n := entry.Pad()
		en.log.Debugf(2, "resolving %d duplicate slot(s) at %q", n, key)
		for i := 0; i < n; i++ {
			pe, se, be := entry.Primary[i], entry.Secondary[i], entry.Both[i]
			if be != nil {
				// The shared element covers this position; single-source
				// leftovers at the same slot are redundant copies.
				if pe != nil {
					pe.State = bookmark.StateDeleted
				}
				if se != nil {
					se.State = bookmark.StateDeleted
				}
				continue
			}
			if pe == nil && se == nil {
				continue
			}
			if pe == nil || se == nil {
				continue
			}
			if pe.IsFolder() {
				return &index.DuplicateFolderError{Key: key, Source: pe.Source}
			}
			if err := en.chooseBetween(pe, se); err != nil {
				return err
			}
		}
	}
	return nil
}

func (en *Engine) chooseBetween(pe, se *bookmark.Element) error {
	candidates := []*bookmark.Element{pe, se}
	choice, err := en.dec.ChooseDuplicate(candidates)
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(candidates) {
		return fmt.Errorf("duplicate choice %d out of range", choice)
	}
	winner, loser := candidates[choice], candidates[1-choice]
	winner.SuppressPrompt = true
	loser.State = bookmark.StateDeleted
	en.log.Debugf(2, "duplicate kept %s, dropped %s", winner, loser)
	return nil
}
