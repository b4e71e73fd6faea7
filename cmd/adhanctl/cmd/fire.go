package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/service/client"
)

var (
	// firePayload is filled from the fire flags.
	firePayload adhan.Payload
	// fireSilent disables sound for the fired alarm.
	fireSilent bool

	fireCmd = &cobra.Command{
		Use:   "fire [prayer-name]",
		Short: "Fire an alarm now.",
		Long:  "Delivers an alarm event to the daemon as if its wake-up had just fired: the Adhan plays and the notification is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := firePayload
			payload.SoundEnabled = !fireSilent

			if len(args) > 0 {
				payload.PrayerName = args[0]
			}

			return runWithCommands(cmd, func(ctx context.Context, c *client.Commands) error {
				return c.Fire(ctx, &payload)
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	fireCmd.Flags().StringVarP(&firePayload.AudioAssetRef, "asset", "a", "", "audio asset to play")
	fireCmd.Flags().BoolVar(&fireSilent, "silent", false, "show the notification without sound")

	rootCmd.AddCommand(fireCmd)
}
