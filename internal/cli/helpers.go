package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bmmerge/internal/bookmark"
	"bmmerge/internal/diag"
	"bmmerge/internal/netscape"
)

// loadEvents parses one bookmark file into its event stream.
func loadEvents(path string, opts netscape.Options) ([]bookmark.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	events, err := netscape.Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return events, nil
}

// writeMerged serializes the merged stream. The whole file is rendered in
// memory first so a serialization failure never leaves a truncated file on
// disk. An empty path writes to stdout.
func writeMerged(cmd *cobra.Command, path string, events []bookmark.Event) error {
	var buf bytes.Buffer
	if err := netscape.Write(&buf, events); err != nil {
		return fmt.Errorf("failed to serialize merged bookmarks: %w", err)
	}

	if path == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// debugLogger builds the run logger from the persistent --debug count.
func debugLogger(cmd *cobra.Command, configLevel int) *diag.Logger {
	level, _ := cmd.Flags().GetCount("debug")
	if level == 0 {
		level = configLevel
	}
	return diag.New(cmd.ErrOrStderr(), level)
}
