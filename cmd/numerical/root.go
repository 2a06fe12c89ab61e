package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/numerical/pkg/log"
)

const logLevelEnv = "NUMERICAL_LOG_LEVEL"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "numerical",
		Short:         "Run the numerical toolkit examples",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: configureLogging,
	}

	defaultLevel := os.Getenv(logLevelEnv)
	if defaultLevel == "" {
		defaultLevel = "warn"
	}
	rootCmd.PersistentFlags().String("log-level", defaultLevel, "Log level (debug, info, warn, error); defaults to $"+logLevelEnv)
	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")

	rootCmd.AddCommand(
		newConvolveCmd(),
		newLinearCmd(),
		newLogisticCmd(),
		newGradientCmd(),
		newDotCmd(),
	)
	return rootCmd
}

// configureLogging installs the zerolog provider for library logs and the
// slog default used for command failures.
func configureLogging(cmd *cobra.Command, _ []string) error {
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(levelName)
	if err != nil {
		return err
	}
	if err := log.Configure(cmd.ErrOrStderr(), level, format); err != nil {
		return err
	}
	return log.SetupLogger(cmd.ErrOrStderr(), levelName)
}
