package cron

import (
	"context"

	"github.com/tsijukebox/jukebox-backup/internal/boundaries/in"
	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

// BackupJobID returns the job id used for a scheduled backup preset.
func BackupJobID(preset domain.BackupSchedule) string {
	return "backup-" + string(preset)
}

// AddBackupJob registers a scheduled backup that creates a slot and then
// applies retention.
func AddBackupJob(s *Scheduler, svc in.BackupService, preset domain.BackupSchedule, includeVolumes bool) error {
	return s.Add(BackupJobID(preset), string(preset)+" backup", preset, func(ctx context.Context) error {
		return svc.RunScheduled(ctx, includeVolumes)
	})
}
