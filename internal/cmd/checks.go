package cmd

import (
	"github.com/spf13/cobra"

	"github.com/summonkit/summon-python/internal/plugin"
)

var staticChecksCmd = &cobra.Command{
	Use:   "static-checks",
	Short: "Run all static checks over all code",
	Long: `Run the linters, the type checker, and the formatters in check mode
over every module of the project. Nothing is modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTask(cmd.Context(), "static-checks", nil, plugin.Options{})
	},
}

var allChecksCmd = &cobra.Command{
	Use:   "all-checks",
	Short: "Run all checks (static checks and tests) over all code",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTask(cmd.Context(), "all-checks", nil, plugin.Options{})
	},
}

func init() {
	rootCmd.AddCommand(staticChecksCmd)
	rootCmd.AddCommand(allChecksCmd)
}
