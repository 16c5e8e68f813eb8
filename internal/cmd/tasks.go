package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/summonkit/summon-python/internal/plugin"
	"github.com/summonkit/summon-python/internal/project"
)

var (
	taskNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	taskSummaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the tasks this plugin contributes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Listing needs no project configuration; definitions carry their
		// own metadata and nothing is executed.
		registry, err := plugin.NewRegistrar(&project.Config{}, nil, nil, plugin.Options{}).Register()
		if err != nil {
			return err
		}

		for _, def := range registry.Definitions() {
			fmt.Printf("%s  %s\n",
				taskNameStyle.Width(14).Render(def.Name),
				taskSummaryStyle.Render(def.Summary),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}
