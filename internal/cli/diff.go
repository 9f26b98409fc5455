package cli

import (
	"bytes"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"bmmerge/internal/config"
	"bmmerge/internal/merge"
	"bmmerge/internal/netscape"
)

var diffCmd = &cobra.Command{
	Use:   "diff <A> <B>",
	Short: "Compare two bookmark files",
	Long: `Compare two bookmark files after normalizing both, so formatting
noise from different browsers never shows up as a difference.

Examples:
  bmmerge diff old.html new.html
  bmmerge diff --unified 5 old.html new.html
`,
	Args: cobra.ExactArgs(2),
	RunE: runDiffCmd,
}

var diffUnified int

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().IntVar(&diffUnified, "unified", 3, "Lines of unified context")
}

func runDiffCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a, err := canonicalize(cmd, cfg, args[0])
	if err != nil {
		return err
	}
	b, err := canonicalize(cmd, cfg, args[1])
	if err != nil {
		return err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: args[0],
		ToFile:   args[1],
		Context:  diffUnified,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("failed to compute diff: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}

// canonicalize parses one file and re-serializes it through an empty merge
// so both sides of the diff share layout.
func canonicalize(cmd *cobra.Command, cfg *config.Config, path string) (string, error) {
	events, err := loadEvents(path, netscape.Options{})
	if err != nil {
		return "", err
	}
	engine := merge.New(merge.Options{}, nil, debugLogger(cmd, cfg.DebugLevel))
	cleaned, err := engine.Run(events, nil)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := netscape.Write(&buf, cleaned); err != nil {
		return "", err
	}
	return buf.String(), nil
}
