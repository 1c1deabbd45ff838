package cmd

import (
	"github.com/spf13/cobra"

	"github.com/exagit/codemaid/internal/domain"
)

const runLongDescription = `Run the full cleanup over the provided paths: protect configured lines,
invoke the cleanup command, restore any protected line it removed, then
sort and relocate the remaining directives inside the enclosing scope.

Files are rewritten in place; use --dry-run to preview without writing.`

var runParallelFlag int
var runExcludeFlags []string
var runAutosaveFlag bool
var runDryRunFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Run the import directive cleanup",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Clean(domain.CleanArgs{
				Paths:    parsePaths(args),
				Exclude:  runExcludeFlags,
				Reports:  reportsDir(),
				Threads:  runParallelFlag,
				Autosave: runAutosaveFlag,
				DryRun:   runDryRunFlag,
			})
		},
	}

	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringArrayVarP(&runExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&runAutosaveFlag, "autosave", false, "mark this run as an autosave context")
	cmd.Flags().BoolVar(&runDryRunFlag, "dry-run", false, "report changes without writing files")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
