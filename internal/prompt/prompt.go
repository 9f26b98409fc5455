// Package prompt implements the interactive terminal decider.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"bmmerge/internal/bookmark"
	"bmmerge/internal/merge"
)

// Console asks the operator through terminal forms. Cancelling any form
// aborts the whole merge.
type Console struct{}

func (Console) ChooseDuplicate(candidates []*bookmark.Element) (int, error) {
	opts := make([]huh.Option[int], len(candidates))
	for i, c := range candidates {
		opts[i] = huh.NewOption(fmt.Sprintf("%s  %s", c.Source, c.Pretty()), i)
	}

	choice := 0
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Duplicate bookmark, keep which one?").
				Description(candidates[0].PathKey()).
				Options(opts...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return 0, wrapAbort(err)
	}
	return choice, nil
}

func (Console) ConfirmDelete(e *bookmark.Element) (bool, error) {
	del := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Only in the older file, delete it?").
				Description(fmt.Sprintf("%s\n%s", e.ParentPath, e.Pretty())).
				Affirmative("Delete").
				Negative("Keep").
				Value(&del),
		),
	)
	if err := form.Run(); err != nil {
		return false, wrapAbort(err)
	}
	return del, nil
}

func wrapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return merge.ErrAborted
	}
	return err
}
