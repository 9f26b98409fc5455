package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmmerge/internal/testutil"
)

const primaryDoc = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>News</H3>
    <DL><p>
        <DT><A HREF="https://a.example">a</A>
    </DL><p>
</DL>
`

const secondaryDoc = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>News</H3>
    <DL><p>
        <DT><A HREF="https://a.example">a</A>
        <DT><A HREF="https://b.example">b</A>
    </DL><p>
</DL>
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	primary := testutil.WriteFile(t, dir, "primary.html", primaryDoc)
	secondary := testutil.WriteFile(t, dir, "secondary.html", secondaryDoc)
	out := dir + "/merged.html"

	_, err := execute(t, "merge", primary, secondary, "-o", out)
	require.NoError(t, err)

	merged := testutil.ReadFile(t, out)
	assert.Contains(t, merged, `<DT><H3>News</H3>`)
	assert.Contains(t, merged, `HREF="https://a.example"`)
	assert.Contains(t, merged, `HREF="https://b.example"`)
	assert.Equal(t, 1, strings.Count(merged, `https://a.example`))
}

func TestMergeCommandMissingFile(t *testing.T) {
	dir := t.TempDir()
	primary := testutil.WriteFile(t, dir, "primary.html", primaryDoc)

	_, err := execute(t, "merge", primary, dir+"/nope.html")
	require.Error(t, err)
}

func TestMergeCommandRejectsPlainHTML(t *testing.T) {
	dir := t.TempDir()
	primary := testutil.WriteFile(t, dir, "primary.html", primaryDoc)
	plain := testutil.WriteFile(t, dir, "plain.html", "<html><body>hi</body></html>")

	_, err := execute(t, "merge", primary, plain)
	require.Error(t, err)
}

func TestCleanCommand(t *testing.T) {
	dir := t.TempDir()
	messy := testutil.WriteFile(t, dir, "messy.html", `<DL><p>
<DT><H3>News</H3><DL><p><DT><A HREF="https://a.example">a</A></DL><p></DL>
`)
	out := dir + "/clean.html"

	_, err := execute(t, "clean", messy, "-o", out)
	require.NoError(t, err)

	cleaned := testutil.ReadFile(t, out)
	assert.Contains(t, cleaned, "    <DT><H3>News</H3>\n    <DL><p>\n")
	assert.True(t, strings.HasPrefix(cleaned, "<!DOCTYPE NETSCAPE-Bookmark-file-1>"))
}

func TestDiffCommandIgnoresLayout(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.html", primaryDoc)
	b := testutil.WriteFile(t, dir, "b.html", `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
<DT><H3>News</H3><DL><p><DT><A HREF="https://a.example">a</A></DL><p></DL>
`)

	out, err := execute(t, "diff", a, b)
	require.NoError(t, err)
	assert.Empty(t, out, "same content in different layout diffs clean")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bmmerge version")
}
