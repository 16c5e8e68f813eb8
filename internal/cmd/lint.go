package cmd

import (
	"github.com/spf13/cobra"

	"github.com/summonkit/summon-python/internal/config"
	"github.com/summonkit/summon-python/internal/plugin"
)

var lintFullReport bool

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Run all linters",
	Long: `Run flake8 and pylint over the given files.
If files are omitted, every module of the project is linted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fullReport := lintFullReport
		if !cmd.Flags().Changed("full-report") {
			fullReport = config.Get().Tasks.FullReport
		}
		return runTask(cmd.Context(), "lint", args, plugin.Options{FullReport: fullReport})
	},
}

var typecheckCmd = &cobra.Command{
	Use:   "typecheck [files...]",
	Short: "Run the type checker",
	Long: `Run mypy over the given files.
If files are omitted, every module of the project is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTask(cmd.Context(), "typecheck", args, plugin.Options{})
	},
}

func init() {
	lintCmd.Flags().BoolVar(&lintFullReport, "full-report", false, "Print detailed reports")
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(typecheckCmd)
}
