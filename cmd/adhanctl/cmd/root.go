package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/adhan-alarm/internal/config"
	"github.com/oshokin/adhan-alarm/internal/logger"
	"github.com/oshokin/adhan-alarm/internal/service/client"
	"github.com/oshokin/adhan-alarm/internal/version"
)

var (
	// options are shared by every subcommand.
	options client.Options

	// rootCmd represents the base command of the control CLI.
	rootCmd = &cobra.Command{
		Use:   "adhanctl",
		Short: "Control the Adhan alarm daemon.",
		Long: `Schedules, lists and cancels prayer alarms on a running adhand, and controls Adhan playback.

The daemon address is read from the configuration file unless --server is given.
With --wait every command keeps retrying until the daemon is reachable.`,
		SilenceUsage: true,
	}
)

// Execute runs the adhanctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runWithCommands connects to the daemon and runs fn with a signal-aware context.
func runWithCommands(cmd *cobra.Command, fn func(ctx context.Context, c *client.Commands) error) error {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "adhanctl")

	commands, closeFn, err := client.Connect(ctx, &options, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = closeFn()
	}()

	return fn(ctx, commands)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&options.ConfigPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&options.ServerAddress, "server", "s", "", "daemon address (overrides config)")
	rootCmd.PersistentFlags().
		BoolVarP(&options.Wait, "wait", "w", false, "retry until the daemon is reachable")
}
