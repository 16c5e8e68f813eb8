package cmd

import (
	"github.com/spf13/cobra"

	"github.com/summonkit/summon-python/internal/config"
	"github.com/summonkit/summon-python/internal/plugin"
)

var (
	testCoverage bool
	testHTML     bool
)

var testCmd = &cobra.Command{
	Use:   "test [pytest args...]",
	Short: "Run tests",
	Long: `Run pytest over the configured test modules.
Extra arguments are passed through to pytest unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		coverage := testCoverage
		if !cmd.Flags().Changed("coverage") {
			coverage = config.Get().Tasks.Coverage
		}
		return runTask(cmd.Context(), "test", args, plugin.Options{
			Coverage:     coverage,
			CoverageHTML: testHTML,
		})
	},
}

var coverageHTMLCmd = &cobra.Command{
	Use:   "coverage-html",
	Short: "Generate an html coverage report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTask(cmd.Context(), "coverage-html", nil, plugin.Options{})
	},
}

func init() {
	testCmd.Flags().BoolVar(&testCoverage, "coverage", false, "Generate coverage information")
	testCmd.Flags().BoolVar(&testHTML, "html", false, "Generate an html coverage report")
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(coverageHTMLCmd)
}
