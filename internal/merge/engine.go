package merge

import (
	"fmt"

	"bmmerge/internal/bookmark"
	"bmmerge/internal/diag"
	"bmmerge/internal/index"
	"bmmerge/internal/tree"
)

// Options tune a merge run.
type Options struct {
	// Interactive enables the deletion-review phase and prompted duplicate
	// resolution. Without it the Decider is still consulted for duplicates
	// but deletions are skipped entirely.
	Interactive bool

	// Diagnose downgrades final-verification failures to warnings so a
	// defective merge can still be inspected.
	Diagnose bool
}

// Engine runs one merge of two event streams into a combined tree. An
// engine is single-use: construct, ingest primary then secondary, Merge,
// then read MergedEvents.
type Engine struct {
	opts Options
	dec  Decider
	log  *diag.Logger

	idx       *index.Index
	primary   *Collection
	secondary *Collection
	merged    *tree.Tree
}

// New returns an engine ready to ingest. A nil decider defaults to
// AutoDecider, a nil logger discards diagnostics.
func New(opts Options, dec Decider, log *diag.Logger) *Engine {
	if dec == nil {
		dec = AutoDecider{}
	}
	if log == nil {
		log = diag.Discard()
	}
	return &Engine{
		opts:      opts,
		dec:       dec,
		log:       log,
		idx:       index.New(),
		primary:   newCollection(bookmark.SourcePrimary),
		secondary: newCollection(bookmark.SourceSecondary),
		merged:    tree.New(bookmark.NewRoot(bookmark.SourceBoth)),
	}
}

func (en *Engine) collection(source bookmark.Source) *Collection {
	if source == bookmark.SourcePrimary {
		return en.primary
	}
	return en.secondary
}

// Ingest replays one source's event stream into the index and that source's
// collection. The stream must be balanced; any structural defect aborts the
// whole merge.
func (en *Engine) Ingest(source bookmark.Source, events []bookmark.Event) error {
	col := en.collection(source)
	var path []string
	for _, ev := range events {
		switch ev.Kind {
		case bookmark.EventOpenFolder:
			e := bookmark.NewFolder(source, len(path), bookmark.MakePath(path), ev.Name, ev.ID)
			if err := en.ingestElement(col, e); err != nil {
				return err
			}
			path = append(path, ev.Name)
		case bookmark.EventCloseFolder:
			if len(path) == 0 {
				return &StructuralError{Source: source, Err: fmt.Errorf("close without open folder")}
			}
			path = path[:len(path)-1]
		case bookmark.EventAnchor:
			e := bookmark.NewAnchor(source, len(path), bookmark.MakePath(path), ev.Href, ev.Text)
			if err := en.ingestElement(col, e); err != nil {
				return err
			}
		default:
			return &StructuralError{Source: source, Err: fmt.Errorf("unknown event kind %q", ev.Kind)}
		}
	}
	if len(path) != 0 {
		return &StructuralError{Source: source, Err: fmt.Errorf("%d folder(s) left open at end of stream", len(path))}
	}
	en.log.Debugf(2, "ingested %d %s elements", len(col.Ordered), source)
	return nil
}

func (en *Engine) ingestElement(col *Collection, e *bookmark.Element) error {
	changed, action, err := en.idx.Ingest(e)
	if err != nil {
		return &StructuralError{Source: col.Source, Err: err}
	}
	en.log.Debugf(3, "%s %s", action, changed)
	col.Ordered = append(col.Ordered, changed)
	if err := col.Tree.Insert(changed, bookmark.SplitPath(changed.ParentPath)); err != nil {
		return &StructuralError{Source: col.Source, Err: err}
	}
	return nil
}

// Merge resolves duplicates and deletions, then assembles the merged tree
// from the primary hierarchy followed by the secondary one, and verifies
// that nothing was left behind.
func (en *Engine) Merge() error {
	if err := en.resolveDuplicates(); err != nil {
		return err
	}
	if err := en.resolveDeletions(); err != nil {
		return err
	}
	if err := en.mergeTree(en.primary.Tree.Root); err != nil {
		return err
	}
	if err := en.mergeTree(en.secondary.Tree.Root); err != nil {
		return err
	}
	return en.verify()
}

// MergedEvents serializes the merged tree back into a balanced event
// stream.
func (en *Engine) MergedEvents() ([]bookmark.Event, error) {
	var events []bookmark.Event
	err := en.merged.Walk(
		func(n *tree.Node) error {
			e := n.Element
			if e.IsFolder() {
				events = append(events, bookmark.OpenFolder(e.Name, e.ID))
			} else {
				events = append(events, bookmark.Anchor(e.Href, e.Text))
			}
			return nil
		},
		func(n *tree.Node) error {
			events = append(events, bookmark.CloseFolder())
			return nil
		})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Run ingests both streams and merges them in one call.
func (en *Engine) Run(primary, secondary []bookmark.Event) ([]bookmark.Event, error) {
	if err := en.Ingest(bookmark.SourcePrimary, primary); err != nil {
		return nil, err
	}
	if err := en.Ingest(bookmark.SourceSecondary, secondary); err != nil {
		return nil, err
	}
	if err := en.Merge(); err != nil {
		return nil, err
	}
	return en.MergedEvents()
}
