package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bmmerge/internal/config"
	"bmmerge/internal/merge"
	"bmmerge/internal/netscape"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Normalize a single bookmark file",
	Long: `Run one bookmark file through the merge pipeline on its own. The
output is the same collection re-serialized in canonical form, with
indentation and tag layout normalized.

Examples:
  bmmerge clean bookmarks.html -o clean.html
`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

var (
	cleanOut           string
	cleanBookmarksOnly bool
)

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVarP(&cleanOut, "out", "o", "", "Output file (default stdout)")
	cleanCmd.Flags().BoolVar(&cleanBookmarksOnly, "bookmarks-only", false, "Require the Netscape bookmark doctype")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	events, err := loadEvents(args[0], netscape.Options{BookmarksOnly: cleanBookmarksOnly})
	if err != nil {
		return err
	}

	log := debugLogger(cmd, cfg.DebugLevel)
	engine := merge.New(merge.Options{}, nil, log)
	cleaned, err := engine.Run(events, nil)
	if err != nil {
		return err
	}

	return writeMerged(cmd, cleanOut, cleaned)
}
