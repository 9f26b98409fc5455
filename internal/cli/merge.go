package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bmmerge/internal/config"
	"bmmerge/internal/merge"
	"bmmerge/internal/netscape"
	"bmmerge/internal/prompt"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <primary> <secondary>",
	Short: "Merge two bookmark files",
	Long: `Merge two bookmark exports into one. The primary file is the newer
export and wins position and, by default, duplicate decisions; the
secondary file contributes everything the primary lacks.

Examples:
  bmmerge merge new.html old.html -o merged.html
  bmmerge merge -i new.html old.html     # review duplicates and deletions
  bmmerge merge new.html old.html        # write merged file to stdout
`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

var (
	mergeInteractive   bool
	mergeDiagnose      bool
	mergeOut           string
	mergeBookmarksOnly bool
)

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().BoolVarP(&mergeInteractive, "interactive", "i", false, "Review duplicates and deletions at the terminal")
	mergeCmd.Flags().BoolVar(&mergeDiagnose, "diagnose", false, "Report unresolved elements instead of failing")
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "", "Output file (default stdout)")
	mergeCmd.Flags().BoolVar(&mergeBookmarksOnly, "bookmarks-only", true, "Require the Netscape bookmark doctype")
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	interactive := mergeInteractive
	if !cmd.Flags().Changed("interactive") {
		interactive = interactive || cfg.Interactive
	}
	bookmarksOnly := mergeBookmarksOnly
	if !cmd.Flags().Changed("bookmarks-only") {
		bookmarksOnly = cfg.BookmarksOnly
	}
	out := mergeOut
	if out == "" {
		out = cfg.Output
	}

	parseOpts := netscape.Options{BookmarksOnly: bookmarksOnly}
	primary, err := loadEvents(args[0], parseOpts)
	if err != nil {
		return err
	}
	secondary, err := loadEvents(args[1], parseOpts)
	if err != nil {
		return err
	}

	var dec merge.Decider
	if interactive {
		dec = prompt.Console{}
	}
	log := debugLogger(cmd, cfg.DebugLevel)
	log.Debugf(1, "merge run %s: %s + %s", log.RunID(), args[0], args[1])

	engine := merge.New(merge.Options{
		Interactive: interactive,
		Diagnose:    mergeDiagnose,
	}, dec, log)

	merged, err := engine.Run(primary, secondary)
	if err != nil {
		return err
	}
	log.Debugf(1, "merge run %s produced %d events", log.RunID(), len(merged))

	return writeMerged(cmd, out, merged)
}
