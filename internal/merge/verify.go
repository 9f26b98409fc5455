package merge

import "bmmerge/internal/bookmark"

// verify checks that every ingested element reached a terminal state. A
// Saved leftover means the merge logic missed it; the run fails rather
// than emit output missing bookmarks. Diagnose mode reports the leftovers
// as warnings and lets the output through for inspection.
func (en *Engine) verify() error {
	var unresolved []*bookmark.Element
	for _, col := range []*Collection{en.primary, en.secondary} {
		for _, el := range col.Ordered {
			if el.IsSaved() {
				unresolved = append(unresolved, el)
			}
		}
	}
	if len(unresolved) == 0 {
		return nil
	}
	for _, el := range unresolved {
		en.log.Warnf("unresolved %s", el)
		en.reportGroup(el)
	}
	if en.opts.Diagnose {
		en.log.Warnf("%d unresolved element(s), continuing in diagnose mode", len(unresolved))
		return nil
	}
	return &UnresolvedElementError{Elements: unresolved}
}

// reportGroup logs the full candidate entry around an unresolved element so
// the state of its duplicate group is visible in one place.
func (en *Engine) reportGroup(el *bookmark.Element) {
	entry := en.idx.Lookup(el.PathKey())
	if entry == nil {
		return
	}
	for _, src := range []bookmark.Source{bookmark.SourceBoth, bookmark.SourcePrimary, bookmark.SourceSecondary} {
		for i, cand := range entry.List(src) {
			if cand == nil {
				en.log.Warnf("  %s[%d] <nil>", src, i)
				continue
			}
			en.log.Warnf("  %s[%d] %s", src, i, cand)
		}
	}
}
