package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/adhan-alarm/internal/config"
	"github.com/oshokin/adhan-alarm/internal/service/daemon"
	"github.com/oshokin/adhan-alarm/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// storePath overrides the schedule store location.
	storePath string

	// rootCmd represents the base command for running the daemon.
	rootCmd = &cobra.Command{
		Use:   "adhand [listen-address]",
		Short: "Run the Adhan alarm daemon.",
		Long: `Starts the daemon that schedules prayer-time wake-ups and plays the Adhan.

On start the daemon restores every upcoming alarm from the schedule store,
then serves the gRPC control API used by adhanctl. When the store is a file
and watching is enabled, edits to the file are picked up without a restart.
Listen address can be provided as argument to override config (e.g., 127.0.0.1:50061).
SIGINT or SIGTERM stops any playing Adhan and shuts the daemon down.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			return daemon.Run(ctx, &daemon.Options{
				ConfigPath:       configPath,
				ListenAddress:    listenAddress,
				StorePath:        storePath,
				ConfigureLogging: true,
			})
		},
	}
)

// Execute runs the adhand CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&storePath, "store", "s", "", "path to the schedule store (overrides config)")
}
