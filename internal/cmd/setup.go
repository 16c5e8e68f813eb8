package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/summonkit/summon-python/internal/plugin"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Setup sane defaults for a python project",
	Long: `Write a GitHub Actions workflow running the summon checks, a
pre-commit hook configuration, and a strict mypy section in pyproject.toml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runTask(cmd.Context(), "setup", nil, plugin.Options{}); err != nil {
			return err
		}
		fmt.Println("Project defaults written.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
