package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/service/client"
)

var (
	// alarmFlags is filled from the schedule flags.
	alarmFlags client.AlarmFlags
	// scheduleFile holds a batch of alarms to schedule.
	scheduleFile string

	// errScheduleArgs is returned when neither a prayer name nor --file is given.
	errScheduleArgs = errors.New("provide a prayer name or --file")

	scheduleCmd = &cobra.Command{
		Use:   "schedule [prayer-name]",
		Short: "Schedule the Adhan for a prayer.",
		Long: `Schedules the Adhan for a prayer, replacing any alarm the prayer already has.

The trigger is either an absolute RFC 3339 time (--at) or a delay from now (--in).
With --file every alarm in a schedule file is submitted in one batch.`,
		Example: `  adhanctl schedule Fajr --at 2026-10-18T05:12:00+03:00
  adhanctl schedule Dhuhr --in 2h --asset adhan_makkah
  adhanctl schedule --file today.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithCommands(cmd, func(ctx context.Context, c *client.Commands) error {
				alarms, err := scheduledAlarms(ctx, args)
				if err != nil {
					return err
				}

				return c.Schedule(ctx, alarms)
			})
		},
	}
)

func scheduledAlarms(ctx context.Context, args []string) ([]*adhan.ScheduledAlarm, error) {
	if scheduleFile != "" {
		return client.LoadAlarms(ctx, scheduleFile)
	}

	if len(args) == 0 {
		return nil, errScheduleArgs
	}

	flags := alarmFlags
	flags.PrayerName = args[0]

	alarm, err := flags.Build(time.Now())
	if err != nil {
		return nil, err
	}

	return []*adhan.ScheduledAlarm{alarm}, nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	scheduleCmd.Flags().StringVar(&alarmFlags.At, "at", "", "absolute trigger time in RFC 3339")
	scheduleCmd.Flags().DurationVar(&alarmFlags.In, "in", 0, "trigger after this delay")
	scheduleCmd.Flags().StringVarP(&alarmFlags.AudioAssetRef, "asset", "a", "", "audio asset to play")
	scheduleCmd.Flags().BoolVar(&alarmFlags.Silent, "silent", false, "show the notification without sound")
	scheduleCmd.Flags().StringVarP(&scheduleFile, "file", "f", "", "schedule every alarm from a schedule file")
	scheduleCmd.MarkFlagsMutuallyExclusive("file", "at")
	scheduleCmd.MarkFlagsMutuallyExclusive("file", "in")

	rootCmd.AddCommand(scheduleCmd)
}
