package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsijukebox/jukebox-backup/internal/app"
	"github.com/tsijukebox/jukebox-backup/internal/boundaries/in"
	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

func newCreateCmd(s *session) *cobra.Command {
	var includeVolumes bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new backup slot",
		Long: `Create a new backup slot containing the configuration directory and,
with --volumes, an archive of every application volume.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(k *app.Kernel) error {
				return runCreate(k.Context(), k.Backup(), cmd.OutOrStdout(), includeVolumes)
			})
		},
	}

	cmd.Flags().BoolVar(&includeVolumes, "volumes", false, "Also archive application volumes")
	return cmd
}

func runCreate(ctx context.Context, svc in.BackupService, w io.Writer, includeVolumes bool) error {
	res, err := svc.CreateBackup(ctx, includeVolumes)
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	if err := cliWriteLine(w, cliRenderSuccess("Backup created: "+res.Slot.Name)); err != nil {
		return err
	}
	if err := writeSlotMeta(w, res.Slot, res.Bytes, res.Duration); err != nil {
		return err
	}
	if !includeVolumes {
		return nil
	}
	return writeVolumeReport(w, res.Volumes)
}

func newRestoreCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <slot>",
		Short: "Restore a backup slot",
		Long: `Restore the configuration directory from a backup slot. Volumes captured
in the slot are restored as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(k *app.Kernel) error {
				return runRestore(k.Context(), k.Backup(), cmd.OutOrStdout(), args[0])
			})
		},
	}
}

func runRestore(ctx context.Context, svc in.BackupService, w io.Writer, ref string) error {
	res, err := svc.RestoreBackup(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	if err := cliWriteLine(w, cliRenderSuccess("Configuration restored from "+res.Slot.Name)); err != nil {
		return err
	}
	if err := writeSlotMeta(w, res.Slot, res.Bytes, res.Duration); err != nil {
		return err
	}
	if !res.Slot.Manifest.IncludeVolumes {
		return nil
	}
	return writeVolumeReport(w, res.Volumes)
}

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List backup slots, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(k *app.Kernel) error {
				return runList(k.Context(), k.Backup(), cmd.OutOrStdout())
			})
		},
	}
}

func runList(ctx context.Context, svc in.BackupService, w io.Writer) error {
	summaries, err := svc.ListBackups(ctx)
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(summaries) == 0 {
		return cliWriteLine(w, cliRenderMuted("No backups found"))
	}

	tw := newTable(w)
	if err := cliWriteLine(tw, "NAME\tCREATED\tVERSION\tVOLUMES\tSIZE"); err != nil {
		return err
	}
	for _, sum := range summaries {
		volumes := yesNo(sum.Manifest.IncludeVolumes)
		if sum.Manifest.Partial() {
			volumes = "partial"
		}
		if err := cliWritef(tw, "%s\t%s\t%s\t%s\t%s\n",
			sum.Name,
			formatCreatedAt(sum.Manifest.CreatedAt),
			valueOrDash(sum.Manifest.Version),
			volumes,
			formatSize(sum.SizeBytes),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func newCleanupCmd(s *session) *cobra.Command {
	var (
		keep    int
		orphans bool
	)

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove old backup slots",
		Long: `Remove every backup slot beyond the newest --keep slots. Without --keep the
configured retention is applied. With --orphans, slot directories that never
received a metadata file are removed as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(k *app.Kernel) error {
				if !cmd.Flags().Changed("keep") {
					keep = k.Config().Backup.Keep
				}
				return runCleanup(k.Context(), k.Backup(), cmd.OutOrStdout(), keep, orphans)
			})
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 0, "Number of newest slots to keep (default from config)")
	cmd.Flags().BoolVar(&orphans, "orphans", false, "Also remove incomplete slot directories")
	return cmd
}

func runCleanup(ctx context.Context, svc in.BackupService, w io.Writer, keep int, orphans bool) error {
	removed, err := svc.CleanupOldBackups(ctx, keep)
	if err != nil {
		if removed > 0 {
			_ = cliWriteLine(w, cliRenderWarning(fmt.Sprintf("Removed %d slot(s) before failing", removed)))
		}
		return fmt.Errorf("failed to clean up backups: %w", err)
	}
	if err := cliWriteLine(w, cliRenderSuccess(fmt.Sprintf("Removed %d slot(s), kept newest %d", removed, keep))); err != nil {
		return err
	}

	if !orphans {
		return nil
	}
	removed, err = svc.CleanupOrphans(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove incomplete slots: %w", err)
	}
	return cliWriteLine(w, cliRenderSuccess(fmt.Sprintf("Removed %d incomplete slot(s)", removed)))
}

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <slot>",
		Aliases: []string{"rm"},
		Short:   "Delete a backup slot",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(k *app.Kernel) error {
				return runDelete(k.Context(), k.Backup(), cmd.OutOrStdout(), args[0])
			})
		},
	}
}

func runDelete(ctx context.Context, svc in.BackupService, w io.Writer, ref string) error {
	if err := svc.DeleteBackup(ctx, ref); err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return cliWriteLine(w, cliRenderSuccess("Deleted "+ref))
}

func newVerifyCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <slot>",
		Short: "Check a backup slot for missing or corrupted data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(k *app.Kernel) error {
				return runVerify(k.Context(), k.Backup(), cmd.OutOrStdout(), args[0])
			})
		},
	}
}

func runVerify(ctx context.Context, svc in.BackupService, w io.Writer, ref string) error {
	res, err := svc.VerifyBackup(ctx, ref)
	if res == nil {
		return fmt.Errorf("failed to verify backup: %w", err)
	}

	if err := cliWriteLine(w, cliRenderTitle(res.Slot.Name)); err != nil {
		return err
	}
	if size, sizeErr := svc.BackupSize(ctx, ref); sizeErr == nil {
		if err := cliWriteLine(w, cliRenderMeta("Size:", formatSize(size))); err != nil {
			return err
		}
	}

	if res.OK() {
		return cliWriteLine(w, cliRenderSuccess("Backup verified"))
	}
	for _, problem := range res.Problems {
		if err := cliWriteLine(w, cliRenderError(problem.Error())); err != nil {
			return err
		}
	}
	if err == nil {
		err = errors.Join(res.Problems...)
	}
	return fmt.Errorf("backup %s failed verification: %w", res.Slot.Name, err)
}

func writeSlotMeta(w io.Writer, slot domain.BackupSlot, bytes int64, elapsed time.Duration) error {
	if err := cliWriteLine(w, cliRenderMeta("Path:", slot.Path)); err != nil {
		return err
	}
	if err := cliWriteLine(w, cliRenderMeta("Created:", formatCreatedAt(slot.Manifest.CreatedAt))); err != nil {
		return err
	}
	if err := cliWriteLine(w, cliRenderMeta("Config:", formatSize(bytes))); err != nil {
		return err
	}
	return cliWriteLine(w, cliRenderMeta("Took:", formatDuration(elapsed)))
}

// writeVolumeReport prints the per-volume outcome and returns the batch error
// so a partial failure ends the command with a non-zero status.
func writeVolumeReport(w io.Writer, report domain.VolumeReport) error {
	if report.DiscoveryErr != nil {
		if err := cliWriteLine(w, cliRenderWarning("Volume discovery failed: "+report.DiscoveryErr.Error())); err != nil {
			return err
		}
		return report.Err()
	}
	if len(report.Results) == 0 {
		return cliWriteLine(w, cliRenderMuted("No volumes"))
	}

	tw := newTable(w)
	if err := cliWriteLine(tw, "VOLUME\tSTATUS\tSIZE\tDURATION"); err != nil {
		return err
	}
	for _, res := range report.Results {
		status := "ok"
		size := formatSize(res.Archive.SizeBytes)
		if !res.OK() {
			status = "failed: " + res.Err.Error()
			size = "-"
		}
		if err := cliWritef(tw, "%s\t%s\t%s\t%s\n", res.Name, status, size, formatDuration(res.Duration)); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return report.Err()
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
