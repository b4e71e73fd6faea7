package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/adhan-alarm/internal/service/client"
)

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List pending alarms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithCommands(cmd, func(ctx context.Context, c *client.Commands) error {
				return c.List(ctx)
			})
		},
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show whether the Adhan is playing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithCommands(cmd, func(ctx context.Context, c *client.Commands) error {
				return c.Status(ctx)
			})
		},
	}

	stopCmd = &cobra.Command{
		Use:   "stop",
		Short: "Stop the Adhan.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithCommands(cmd, func(ctx context.Context, c *client.Commands) error {
				return c.Stop(ctx)
			})
		},
	}

	assetsCmd = &cobra.Command{
		Use:   "assets",
		Short: "List playable Adhan recordings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithCommands(cmd, func(ctx context.Context, c *client.Commands) error {
				return c.Assets(ctx)
			})
		},
	}

	testCmd = &cobra.Command{
		Use:   "test [asset]",
		Short: "Play an Adhan recording without a notification.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var asset string
			if len(args) > 0 {
				asset = args[0]
			}

			return runWithCommands(cmd, func(ctx context.Context, c *client.Commands) error {
				return c.Test(ctx, asset)
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(listCmd, statusCmd, stopCmd, assetsCmd, testCmd)
}
