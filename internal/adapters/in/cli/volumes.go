package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tsijukebox/jukebox-backup/internal/app"
	"github.com/tsijukebox/jukebox-backup/internal/boundaries/in"
)

// newVolumesCmd creates the volumes command group.
func newVolumesCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volumes",
		Short: "Inspect and archive application volumes",
		Long: `Inspect the application volumes and archive or restore them against an
existing backup slot directory. The container runtime must be reachable.`,
	}

	cmd.AddCommand(newVolumesListCmd(s))
	cmd.AddCommand(newVolumesBackupCmd(s))
	cmd.AddCommand(newVolumesRestoreCmd(s))

	return cmd
}

func newVolumesListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the volumes that belong to the appliance",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(k *app.Kernel) error {
				return runVolumesList(k.Context(), k.Backup(), cmd.OutOrStdout())
			})
		},
	}
}

func runVolumesList(ctx context.Context, svc in.BackupService, w io.Writer) error {
	volumes, err := svc.ListVolumes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list volumes: %w", err)
	}
	if len(volumes) == 0 {
		return cliWriteLine(w, cliRenderMuted("No volumes found"))
	}
	for _, v := range volumes {
		if err := cliWriteLine(w, v.Name); err != nil {
			return err
		}
	}
	return nil
}

func newVolumesBackupCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "backup <slot-dir>",
		Short: "Archive every volume into a slot directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(k *app.Kernel) error {
				return runVolumesBackup(k.Context(), k.Backup(), cmd.OutOrStdout(), args[0])
			})
		},
	}
}

func runVolumesBackup(ctx context.Context, svc in.BackupService, w io.Writer, slotPath string) error {
	report, err := svc.BackupVolumes(ctx, slotPath)
	if len(report.Results) == 0 && report.DiscoveryErr == nil && err != nil {
		return fmt.Errorf("failed to back up volumes: %w", err)
	}
	if err := cliWriteLine(w, cliRenderTitle("Volume backup: "+slotPath)); err != nil {
		return err
	}
	return writeVolumeReport(w, report)
}

func newVolumesRestoreCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <slot-dir>",
		Short: "Restore every archived volume from a slot directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(k *app.Kernel) error {
				return runVolumesRestore(k.Context(), k.Backup(), cmd.OutOrStdout(), args[0])
			})
		},
	}
}

func runVolumesRestore(ctx context.Context, svc in.BackupService, w io.Writer, slotPath string) error {
	report, err := svc.RestoreVolumes(ctx, slotPath)
	if len(report.Results) == 0 && report.DiscoveryErr == nil && err != nil {
		return fmt.Errorf("failed to restore volumes: %w", err)
	}
	if err := cliWriteLine(w, cliRenderTitle("Volume restore: "+slotPath)); err != nil {
		return err
	}
	return writeVolumeReport(w, report)
}
