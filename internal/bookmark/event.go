package bookmark

// EventKind identifies one entry in the structural event stream exchanged
// with the parser and the serializer.
type EventKind string

const (
	EventOpenFolder  EventKind = "open_folder"
	EventCloseFolder EventKind = "close_folder"
	EventAnchor      EventKind = "anchor"
)

// Event is one structural event. A well-formed stream is ordered and
// balanced: every OpenFolder has a matching CloseFolder, and folder names
// arrive already normalized (no raw '/' inside a name).
type Event struct {
	Kind EventKind
	Name string // OpenFolder
	ID   string // OpenFolder, optional
	Href string // Anchor
	Text string // Anchor
}

// OpenFolder returns an event that opens a folder scope.
func OpenFolder(name, id string) Event {
	return Event{Kind: EventOpenFolder, Name: name, ID: id}
}

// CloseFolder returns an event that closes the innermost open folder.
func CloseFolder() Event {
	return Event{Kind: EventCloseFolder}
}

// Anchor returns an event for one bookmark link.
func Anchor(href, text string) Event {
	return Event{Kind: EventAnchor, Href: href, Text: text}
}
