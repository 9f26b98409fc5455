package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bmmerge",
	Short: "Merge browser bookmark files",
	Long: `bmmerge combines two Netscape-format bookmark exports into one file.
Entries present in both inputs are emitted once, entries unique to either
input are kept, and near-duplicates and deletions can be reviewed
interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountP("debug", "D", "Increase diagnostic verbosity (repeatable)")
}
