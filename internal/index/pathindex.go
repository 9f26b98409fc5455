package index

import (
	"fmt"

	"bmmerge/internal/bookmark"
)

// Action reports what Ingest did with an element.
type Action string

const (
	// ActionInsert appended the element to its own provenance list.
	ActionInsert Action = "insert"
	// ActionModify promoted matching opposite-source candidates to Both.
	ActionModify Action = "modify"
)

// DuplicateFolderError reports two live elements claiming the same folder
// path key within a single source. This is an upstream data defect, never a
// duplicate to resolve.
type DuplicateFolderError struct {
	Key    string
	Source bookmark.Source
}

func (e *DuplicateFolderError) Error() string {
	return fmt.Sprintf("duplicate folder %q in %s input", e.Key, e.Source)
}

// Entry holds the candidate elements for one path key, one ordered list per
// provenance. Lists may contain nil placeholders once duplicate resolution
// pads them for positional pairing.
type Entry struct {
	Primary   []*bookmark.Element
	Secondary []*bookmark.Element
	Both      []*bookmark.Element
}

// List returns the list for one provenance tag.
func (en *Entry) List(s bookmark.Source) []*bookmark.Element {
	switch s {
	case bookmark.SourcePrimary:
		return en.Primary
	case bookmark.SourceSecondary:
		return en.Secondary
	case bookmark.SourceBoth:
		return en.Both
	}
	panic(fmt.Sprintf("index: unknown source %q", s))
}

func (en *Entry) setList(s bookmark.Source, list []*bookmark.Element) {
	switch s {
	case bookmark.SourcePrimary:
		en.Primary = list
	case bookmark.SourceSecondary:
		en.Secondary = list
	case bookmark.SourceBoth:
		en.Both = list
	}
}

// Pad extends each list with nil placeholders to a common length so
// candidates can be paired by position. Returns the padded length.
func (en *Entry) Pad() int {
	n := len(en.Primary)
	if len(en.Secondary) > n {
		n = len(en.Secondary)
	}
	if len(en.Both) > n {
		n = len(en.Both)
	}
	en.Primary = pad(en.Primary, n)
	en.Secondary = pad(en.Secondary, n)
	en.Both = pad(en.Both, n)
	return n
}

func pad(list []*bookmark.Element, n int) []*bookmark.Element {
	for len(list) < n {
		list = append(list, nil)
	}
	return list
}

// live counts the non-deleted elements across all three lists.
func (en *Entry) live() int {
	n := 0
	for _, list := range [][]*bookmark.Element{en.Primary, en.Secondary, en.Both} {
		for _, el := range list {
			if el != nil && !el.IsDeleted() {
				n++
			}
		}
	}
	return n
}

// Index maps path keys to candidate entries. Key insertion order is
// remembered so every later phase iterates deterministically.
type Index struct {
	entries map[string]*Entry
	keys    []string
}

// New returns an empty index.
func New() *Index {
	return &Index{entries: make(map[string]*Entry)}
}

// Lookup returns the entry for key, or nil when the key was never ingested.
func (ix *Index) Lookup(key string) *Entry {
	return ix.entries[key]
}

// Keys returns every ingested path key in first-seen order.
func (ix *Index) Keys() []string {
	return ix.keys
}

func (ix *Index) entry(key string) *Entry {
	en, ok := ix.entries[key]
	if !ok {
		en = &Entry{}
		ix.entries[key] = en
		ix.keys = append(ix.keys, key)
	}
	return en
}

// Ingest adds an element to the index, discovering cross-source duplicates
// incrementally. Every opposite-source candidate equal to the element (for
// anchors the text must also match, folders have no further discriminator)
// is moved into the Both list with its source promoted in place; the first
// moved candidate is returned as the changed element (a MODIFY). With no
// match the element itself is appended to its own list and returned (an
// INSERT). The caller appends the changed element to its ingestion log and
// tree.
func (ix *Index) Ingest(e *bookmark.Element) (*bookmark.Element, Action, error) {
	key := e.PathKey()
	en := ix.entry(key)
	otherSource := e.Source.Opposite()

	var changed *bookmark.Element
	var kept []*bookmark.Element
	for _, cand := range en.List(otherSource) {
		match := cand.Equal(e)
		if match && e.IsAnchor() && cand.Text != e.Text {
			match = false
		}
		if !match {
			kept = append(kept, cand)
			continue
		}
		if cand.Source == e.Source {
			return nil, "", fmt.Errorf("index: candidate %s already tagged %s at %q", cand, e.Source, key)
		}
		cand.Source = bookmark.SourceBoth
		en.Both = append(en.Both, cand)
		if changed == nil {
			changed = cand
		}
	}

	if changed != nil {
		en.setList(otherSource, kept)
		return changed, ActionModify, nil
	}

	// A folder key must stay unique per source: any live occupant at this
	// point means the same source defined the folder twice.
	if e.IsFolder() && en.live() > 0 {
		return nil, "", &DuplicateFolderError{Key: key, Source: e.Source}
	}

	en.setList(e.Source, append(en.List(e.Source), e))
	return e, ActionInsert, nil
}
