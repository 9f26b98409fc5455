package bookmark

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind discriminates the two element variants.
type Kind string

const (
	KindFolder Kind = "folder"
	KindAnchor Kind = "anchor"
)

// Source tags which input file an element was seen in. An element promoted
// to SourceBoth was present and equal in both inputs; the promotion never
// reverts.
type Source string

const (
	SourcePrimary   Source = "primary"
	SourceSecondary Source = "secondary"
	SourceBoth      Source = "both"
)

// Opposite returns the other single-file source.
func (s Source) Opposite() Source {
	switch s {
	case SourcePrimary:
		return SourceSecondary
	case SourceSecondary:
		return SourcePrimary
	}
	panic(fmt.Sprintf("bookmark: no opposite source for %q", s))
}

// Short returns a single-letter abbreviation for debug output.
func (s Source) Short() string { return string(s[:1]) }

// State tracks an element through the merge lifecycle. Saved is the initial
// state; Handled (copied into the merged tree) and Deleted (excluded from
// it) are both terminal.
type State string

const (
	StateSaved   State = "saved"
	StateHandled State = "handled"
	StateDeleted State = "deleted"
)

// Short returns a single-letter abbreviation for debug output.
func (s State) Short() string { return string(s[:1]) }

// Element is one bookmark entry, either a folder or an anchor. The variant
// and the identity-bearing fields are fixed at construction; only Source,
// State, and SuppressPrompt mutate during a merge.
type Element struct {
	UUID           string
	Kind           Kind
	Source         Source
	ParentPath     string // absolute '/'-separated path of the parent folder
	NestingDepth   int    // -1 only for the synthetic root
	State          State
	SuppressPrompt bool

	// Folder fields.
	Name string
	ID   string // optional "id" attribute, e.g. Safari's Reading List

	// Anchor fields. Text is descriptive only and never identity-bearing.
	Href string
	Text string
}

// NewFolder constructs a folder element in the Saved state.
func NewFolder(source Source, depth int, parentPath, name, id string) *Element {
	return &Element{
		UUID:         uuid.NewString(),
		Kind:         KindFolder,
		Source:       source,
		ParentPath:   parentPath,
		NestingDepth: depth,
		State:        StateSaved,
		Name:         name,
		ID:           id,
	}
}

// NewAnchor constructs an anchor element in the Saved state.
func NewAnchor(source Source, depth int, parentPath, href, text string) *Element {
	return &Element{
		UUID:         uuid.NewString(),
		Kind:         KindAnchor,
		Source:       source,
		ParentPath:   parentPath,
		NestingDepth: depth,
		State:        StateSaved,
		Href:         href,
		Text:         text,
	}
}

// NewRoot constructs the synthetic "/" folder that anchors a tree. It sits
// above the top-level elements at depth -1 and is never ingested.
func NewRoot(source Source) *Element {
	return NewFolder(source, -1, "", "/", "")
}

func (e *Element) IsFolder() bool  { return e.Kind == KindFolder }
func (e *Element) IsAnchor() bool  { return e.Kind == KindAnchor }
func (e *Element) IsSaved() bool   { return e.State == StateSaved }
func (e *Element) IsHandled() bool { return e.State == StateHandled }
func (e *Element) IsDeleted() bool { return e.State == StateDeleted }

// PathKey returns the canonical key for the path index. A folder's key is
// its own full path and must be unique per source. An anchor's key joins
// the parent path and href with "@@"; the same anchor key can legitimately
// repeat many times (identical placeholder links used as separators).
func (e *Element) PathKey() string {
	if e.Kind == KindFolder {
		return FullPath(e.ParentPath, e.Name)
	}
	return e.ParentPath + "@@" + e.Href
}

// Equal reports identity-bearing equality. Folders compare parent path and
// name; anchors compare parent path and href. Anchor text never
// participates: differing texts for the same href are the same bookmark.
func (e *Element) Equal(other *Element) bool {
	if other == nil || e.Kind != other.Kind || e.ParentPath != other.ParentPath {
		return false
	}
	if e.Kind == KindFolder {
		return e.Name == other.Name
	}
	return e.Href == other.Href
}

// Pretty renders the element the way an operator would recognize it in a
// prompt.
func (e *Element) Pretty() string {
	if e.Kind == KindFolder {
		return e.Name + ":"
	}
	return fmt.Sprintf("<%s> %s", e.Href, e.Text)
}

func (e *Element) String() string {
	if e.Kind == KindFolder {
		return fmt.Sprintf("Folder(d %d s %s st %s p %q f %q)",
			e.NestingDepth, e.Source.Short(), e.State.Short(), e.ParentPath, e.Name)
	}
	return fmt.Sprintf("Anchor(d %d s %s st %s p %q h %q a %q)",
		e.NestingDepth, e.Source.Short(), e.State.Short(), e.ParentPath, e.Href, e.Text)
}
