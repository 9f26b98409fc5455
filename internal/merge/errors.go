package merge

import (
	"errors"
	"fmt"
	"strings"

	"bmmerge/internal/bookmark"
)

// ErrAborted is returned when the operator cancels an interactive prompt.
// The merge stops immediately and no output is produced.
var ErrAborted = errors.New("merge aborted by operator")

// StructuralError reports malformed input from one source: unbalanced folder
// events, a missing ancestor, or a folder defined twice in the same file.
type StructuralError struct {
	Source bookmark.Source
	Err    error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error in %s input: %v", e.Source, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// UnresolvedElementError reports elements still Saved after the merge
// completed. Final verification fails rather than silently dropping them.
type UnresolvedElementError struct {
	Elements []*bookmark.Element
}

func (e *UnresolvedElementError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d element(s) left unresolved after merge", len(e.Elements))
	for _, el := range e.Elements {
		fmt.Fprintf(&b, "\n  %s", el)
	}
	return b.String()
}
