package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/bnema/zerowrap"
	"github.com/spf13/cobra"

	"github.com/tsijukebox/jukebox-backup/internal/app"
	"github.com/tsijukebox/jukebox-backup/internal/boundaries/in"
	"github.com/tsijukebox/jukebox-backup/internal/domain"
	"github.com/tsijukebox/jukebox-backup/internal/usecase/cron"
)

func newScheduleCmd(s *session) *cobra.Command {
	var (
		preset         string
		includeVolumes bool
		once           bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run scheduled backups in the foreground",
		Long: `Run the backup scheduler until interrupted. Each run creates a slot and then
applies the configured retention. The preset and volume inclusion default to the
schedule section of the config file.

With --once a single scheduled run is performed immediately and the command exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(k *app.Kernel) error {
				settings := k.Schedule()
				if cmd.Flags().Changed("preset") {
					settings.Preset = domain.BackupSchedule(preset)
				}
				if cmd.Flags().Changed("volumes") {
					settings.IncludeVolumes = includeVolumes
				}

				ctx, stop := signal.NotifyContext(k.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				if settings.IncludeVolumes {
					if err := k.PingRuntime(ctx); err != nil {
						_ = cliWriteLine(cmd.ErrOrStderr(), cliRenderWarning("Container runtime unreachable, volume archives will fail: "+err.Error()))
					}
				}

				scheduler := cron.NewScheduler(k.Log())
				return runSchedule(ctx, scheduler, k.Backup(), cmd.OutOrStdout(), settings, once)
			})
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "Schedule preset: hourly, daily, weekly or monthly")
	cmd.Flags().BoolVar(&includeVolumes, "volumes", true, "Include application volumes in scheduled backups")
	cmd.Flags().BoolVar(&once, "once", false, "Perform one scheduled run now and exit")
	return cmd
}

func runSchedule(ctx context.Context, scheduler *cron.Scheduler, svc in.BackupService, w io.Writer, settings app.ScheduleSettings, once bool) error {
	if !settings.Preset.IsValid() {
		return fmt.Errorf("%w: unknown schedule preset %q", domain.ErrInvalidArgument, settings.Preset)
	}

	if err := cron.AddBackupJob(scheduler, svc, settings.Preset, settings.IncludeVolumes); err != nil {
		return fmt.Errorf("failed to register backup job: %w", err)
	}
	jobID := cron.BackupJobID(settings.Preset)

	if once {
		if err := scheduler.RunNow(ctx, jobID); err != nil {
			return fmt.Errorf("scheduled backup failed: %w", err)
		}
		return cliWriteLine(w, cliRenderSuccess("Scheduled backup completed"))
	}

	for _, entry := range scheduler.List() {
		if err := cliWriteLine(w, cliRenderMeta(entry.Name+":", "next run "+formatCreatedAt(entry.NextRun))); err != nil {
			return err
		}
	}

	zerowrap.FromCtx(ctx).Info().
		Str("preset", string(settings.Preset)).
		Bool("include_volumes", settings.IncludeVolumes).
		Msg("backup scheduler started")

	scheduler.Run(ctx)

	return cliWriteLine(w, cliRenderMuted("Scheduler stopped"))
}
