package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"bmmerge/internal/bookmark"
)

// Stream builds bookmark event sequences for tests without the ceremony of
// literal slices.
type Stream struct {
	events []bookmark.Event
}

// NewStream returns an empty stream builder.
func NewStream() *Stream {
	return &Stream{}
}

// Open appends a folder-open event.
func (s *Stream) Open(name string) *Stream {
	s.events = append(s.events, bookmark.OpenFolder(name, ""))
	return s
}

// OpenID appends a folder-open event with an ID attribute.
func (s *Stream) OpenID(name, id string) *Stream {
	s.events = append(s.events, bookmark.OpenFolder(name, id))
	return s
}

// Close appends a folder-close event.
func (s *Stream) Close() *Stream {
	s.events = append(s.events, bookmark.CloseFolder())
	return s
}

// Anchor appends an anchor event.
func (s *Stream) Anchor(href, text string) *Stream {
	s.events = append(s.events, bookmark.Anchor(href, text))
	return s
}

// Events returns the built sequence.
func (s *Stream) Events() []bookmark.Event {
	return s.events
}

// WriteFile writes content to a file in a temporary directory
func WriteFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile reads content from a file
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}
