package merge

import (
	"fmt"

	"bmmerge/internal/bookmark"
)

// Decider answers the two questions a merge can ask an operator. The engine
// never talks to a terminal itself; interactive and scripted runs differ
// only in which Decider they plug in.
type Decider interface {
	// ChooseDuplicate picks the winner among positionally paired duplicate
	// candidates and returns its index.
	ChooseDuplicate(candidates []*bookmark.Element) (int, error)

	// ConfirmDelete reports whether a secondary-only element should be
	// dropped from the merged output.
	ConfirmDelete(e *bookmark.Element) (bool, error)
}

// AutoDecider resolves everything conservatively without asking: the
// primary candidate wins duplicates and nothing is ever deleted.
type AutoDecider struct{}

func (AutoDecider) ChooseDuplicate(candidates []*bookmark.Element) (int, error) {
	return 0, nil
}

func (AutoDecider) ConfirmDelete(e *bookmark.Element) (bool, error) {
	return false, nil
}

// ScriptedDecider replays a fixed sequence of answers. Used by tests and by
// batch runs that were rehearsed interactively.
type ScriptedDecider struct {
	Choices []int
	Deletes []bool

	choiceCursor int
	deleteCursor int
}

func (d *ScriptedDecider) ChooseDuplicate(candidates []*bookmark.Element) (int, error) {
	if d.choiceCursor >= len(d.Choices) {
		return 0, fmt.Errorf("scripted decider: no choice left for %s", candidates[0])
	}
	c := d.Choices[d.choiceCursor]
	d.choiceCursor++
	return c, nil
}

func (d *ScriptedDecider) ConfirmDelete(e *bookmark.Element) (bool, error) {
	if d.deleteCursor >= len(d.Deletes) {
		return false, fmt.Errorf("scripted decider: no delete answer left for %s", e)
	}
	del := d.Deletes[d.deleteCursor]
	d.deleteCursor++
	return del, nil
}
