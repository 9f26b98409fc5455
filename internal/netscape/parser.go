// Package netscape reads and writes the Netscape bookmark file format, the
// HTML dialect every mainstream browser exports. Parsing produces the flat
// structural event stream the merge engine consumes; writing turns a stream
// back into a file Firefox will re-import.
package netscape

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"bmmerge/internal/bookmark"
)

// Options tune parsing.
type Options struct {
	// BookmarksOnly rejects input whose doctype is not the Netscape
	// bookmark marker. Off, any HTML with H3/A/DL structure parses.
	BookmarksOnly bool
}

const doctypeMarker = "netscape-bookmark-file-1"

// Parse tokenizes a bookmark file into an ordered event stream. Folder
// scopes come from H3 headings and the DL list that follows each; anchors
// come from A tags. Tag soup outside that skeleton (paragraph separators,
// metadata) is ignored.
func Parse(r io.Reader, opts Options) ([]bookmark.Event, error) {
	z := html.NewTokenizer(r)

	var events []bookmark.Event
	var text strings.Builder
	var inH3, inA bool
	var h3ID, aHref string
	isBookmarksDoc := false
	dlDepth := 0
	openFolders := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("tokenizing bookmarks: %w", err)
			}
			if opts.BookmarksOnly && !isBookmarksDoc {
				return nil, fmt.Errorf("input is not a Netscape bookmark file")
			}
			if dlDepth != 0 {
				return nil, fmt.Errorf("unbalanced folder lists at end of input")
			}
			return events, nil

		case html.DoctypeToken:
			if strings.Contains(strings.ToLower(string(z.Text())), doctypeMarker) {
				isBookmarksDoc = true
			}

		case html.StartTagToken:
			name, attrs := tagName(z)
			switch name {
			case "h3":
				if inH3 {
					return nil, fmt.Errorf("nested H3 heading")
				}
				inH3 = true
				h3ID = attrs["id"]
				text.Reset()
			case "a":
				inA = true
				aHref = attrs["href"]
				text.Reset()
			case "dl":
				dlDepth++
			}

		case html.EndTagToken:
			name, _ := tagName(z)
			switch name {
			case "h3":
				if inH3 {
					events = append(events, bookmark.OpenFolder(bookmark.EscapeName(text.String()), h3ID))
					openFolders++
					inH3 = false
				}
			case "a":
				if inA {
					events = append(events, bookmark.Anchor(aHref, text.String()))
					inA = false
				}
			case "dl":
				dlDepth--
				if dlDepth < 0 {
					return nil, fmt.Errorf("closing list without opening one")
				}
				if openFolders > 0 {
					events = append(events, bookmark.CloseFolder())
					openFolders--
				}
			}

		case html.TextToken:
			if inH3 || inA {
				text.Write(z.Text())
			}
		}
	}
}

// tagName reads the current tag's lowercase name and attributes.
func tagName(z *html.Tokenizer) (string, map[string]string) {
	name, hasAttr := z.TagName()
	attrs := map[string]string{}
	for hasAttr {
		var k, v []byte
		k, v, hasAttr = z.TagAttr()
		attrs[strings.ToLower(string(k))] = string(v)
	}
	return strings.ToLower(string(name)), attrs
}
