package cmd

import (
	"github.com/spf13/cobra"

	"github.com/summonkit/summon-python/internal/plugin"
)

var formatCheck bool

var formatCmd = &cobra.Command{
	Use:   "format [files...]",
	Short: "Run all formatters",
	Long: `Run black and isort over the given files.
If files are omitted, every module of the project is formatted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTask(cmd.Context(), "format", args, plugin.Options{Check: formatCheck})
	},
}

func init() {
	formatCmd.Flags().BoolVar(&formatCheck, "check", false, "Only check instead of modifying")
	rootCmd.AddCommand(formatCmd)
}
