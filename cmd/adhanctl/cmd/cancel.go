package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/adhan-alarm/internal/service/client"
)

var (
	// cancelAll cancels every pending alarm.
	cancelAll bool

	cancelCmd = &cobra.Command{
		Use:   "cancel [prayer-name...]",
		Short: "Cancel prayer alarms.",
		Long:  "Cancels the alarms of the named prayers, or every pending alarm with --all. Cancelling a prayer without an alarm is not an error.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithCommands(cmd, func(ctx context.Context, c *client.Commands) error {
				return c.Cancel(ctx, args, cancelAll)
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	cancelCmd.Flags().BoolVar(&cancelAll, "all", false, "cancel every pending alarm")

	rootCmd.AddCommand(cancelCmd)
}
