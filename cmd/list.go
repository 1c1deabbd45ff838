package cmd

import (
	"github.com/spf13/cobra"

	"github.com/exagit/codemaid/internal/domain"
)

const listLongDescription = `List the files the cleanup would touch, with the number of import
directives and enclosing scope blocks found in each. Files with anything
other than exactly one scope block are reported as not relocatable.`

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List files and directive counts",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Estimate(domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: listExcludeFlags,
			})
		},
	}

	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
