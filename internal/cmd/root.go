package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/summonkit/summon-python/internal/config"
	"github.com/summonkit/summon-python/internal/execute"
	"github.com/summonkit/summon-python/internal/logging"
	"github.com/summonkit/summon-python/internal/plugin"
	"github.com/summonkit/summon-python/internal/project"
)

var rootCmd = &cobra.Command{
	Use:   "summon-python",
	Short: "Python developer tasks for the summon task runner",
	Long: `summon-python contributes Python-project developer tasks to the summon
task runner: formatting, linting, type checking, and testing, each shelling
out to the standard Python tooling configured for the project.`,
	SilenceUsage: true,
}

// taskExitCode holds the exit status of the last task run, surfaced
// verbatim as the process exit code.
var taskExitCode int

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return taskExitCode
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/summon-python/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/summon-python")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SUMMON_PYTHON")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SUMMON_PYTHON_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newLogger builds the process logger from the loaded settings.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.NopLogger()
	}
	return logger
}

// runTask loads the project configuration from the current directory,
// registers the task set, and runs one task. The first non-zero tool exit
// code becomes the process exit code.
func runTask(ctx context.Context, name string, extraArgs []string, opts plugin.Options) error {
	cfg := config.Get()
	logger := newLogger(cfg)
	defer logger.Close()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	projCfg, err := project.Load(cwd)
	if err != nil {
		return err
	}

	runner := execute.NewExecRunner(logger)
	registry, err := plugin.NewRegistrar(projCfg, runner, logger.WithTask(name), opts).Register()
	if err != nil {
		return err
	}

	code, err := registry.ExitCode(ctx, name, extraArgs)
	if err != nil {
		return err
	}

	taskExitCode = code
	return nil
}
