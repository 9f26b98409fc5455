package netscape

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"bmmerge/internal/bookmark"
)

const prologue = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<META HTTP-EQUIV="Content-Security-Policy" CONTENT="default-src 'self'; script-src 'none'; img-src data: *; object-src 'none'"></META>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks Menu</H1>

<DL><p>
`

// Write serializes a balanced event stream as a Netscape bookmark file.
// The stream must close every folder it opens.
func Write(w io.Writer, events []bookmark.Event) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(prologue); err != nil {
		return err
	}

	depth := 0
	for _, ev := range events {
		switch ev.Kind {
		case bookmark.EventOpenFolder:
			ws := indent(depth)
			if ev.ID != "" {
				fmt.Fprintf(bw, "%s<DT><H3 id=\"%s\">%s</H3>\n", ws, html.EscapeString(ev.ID), escapeFolderName(ev.Name))
			} else {
				fmt.Fprintf(bw, "%s<DT><H3>%s</H3>\n", ws, escapeFolderName(ev.Name))
			}
			fmt.Fprintf(bw, "%s<DL><p>\n", ws)
			depth++
		case bookmark.EventCloseFolder:
			depth--
			if depth < 0 {
				return fmt.Errorf("closing a folder that was never opened")
			}
			fmt.Fprintf(bw, "%s</DL><p>\n", indent(depth))
		case bookmark.EventAnchor:
			fmt.Fprintf(bw, "%s<DT><A HREF=\"%s\">%s</A>\n", indent(depth),
				html.EscapeString(ev.Href), html.EscapeString(ev.Text))
		default:
			return fmt.Errorf("unknown event kind %q", ev.Kind)
		}
	}
	if depth != 0 {
		return fmt.Errorf("%d folder(s) left open in event stream", depth)
	}

	if _, err := bw.WriteString("</DL>\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// escapeFolderName HTML-escapes a folder name while keeping the &#47;
// slash reference intact. Names arrive with literal '/' already encoded as
// &#47; so path keys stay unambiguous; escaping the ampersand again would
// render the reference as text instead of a slash.
func escapeFolderName(name string) string {
	return strings.ReplaceAll(html.EscapeString(name), "&amp;#47;", "&#47;")
}

// indent returns the leading whitespace for one nesting depth. The file's
// outer DL counts as depth zero, so everything inside it starts one step in.
func indent(depth int) string {
	const step = "    "
	ws := step
	for i := 0; i < depth; i++ {
		ws += step
	}
	return ws
}
