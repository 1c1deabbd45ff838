// Package cmd provides the root command and CLI setup for codemaid.
package cmd

import (
	"os"

	"github.com/exagit/codemaid/internal/adapter"
	"github.com/exagit/codemaid/internal/controller"
	"github.com/exagit/codemaid/internal/domain"
	m "github.com/exagit/codemaid/internal/model"
	"github.com/spf13/cobra"
)

const defaultConfigPath = ".codemaid.yml"

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var settings domain.Settings
var ui controller.UI
var workflow domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()

	loaded, err := domain.LoadSettings(defaultConfigPath)
	if err == nil {
		settings = loaded
	} else {
		settings = domain.DefaultSettings()
	}

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, settings)
}

var configFlag string
var reportsOutputDirFlag string
var listFlag bool
var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codemaid [paths...]",
		Short: "Import directive cleanup tool",
		Long: `Codemaid cleans up import directives in source files: it removes
unused directives through a configurable cleanup command while guaranteeing
that protected lines are never permanently lost, then re-sorts the
remaining directives (standard-library references first, then ordinal
order) and relocates them inside the enclosing scope.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan multiple directories`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Root().PersistentFlags().Changed("config") {
				return nil
			}

			loaded, err := domain.LoadSettings(configFlag)
			if err != nil {
				return err
			}

			settings = loaded
			workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, settings)

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			paths := parsePaths(args)

			if listFlag {
				return workflow.Estimate(domain.EstimateArgs{Paths: paths})
			}

			return workflow.Clean(domain.CleanArgs{
				Paths:   paths,
				Reports: reportsDir(),
				Threads: parallelFlag,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", defaultConfigPath, "path to the YAML config file")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", "", "reports output directory (defaults to the configured reports_dir)")
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list files and directive counts without cleaning")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		args = []string{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func reportsDir() m.Path {
	if reportsOutputDirFlag != "" {
		return m.Path(reportsOutputDirFlag)
	}

	return m.Path(settings.ReportsDir)
}
