// Package in defines input ports (interfaces) driven by the CLI and scheduler.
package in

import (
	"context"

	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

// BackupService defines backup orchestration use cases.
type BackupService interface {
	CreateBackup(ctx context.Context, includeVolumes bool) (*domain.BackupResult, error)
	RestoreBackup(ctx context.Context, ref string) (*domain.RestoreResult, error)
	ListBackups(ctx context.Context) ([]domain.BackupSummary, error)
	CleanupOldBackups(ctx context.Context, keep int) (int, error)

	BackupVolumes(ctx context.Context, slotPath string) (domain.VolumeReport, error)
	RestoreVolumes(ctx context.Context, slotPath string) (domain.VolumeReport, error)
	ListVolumes(ctx context.Context) ([]domain.VolumeRecord, error)

	DeleteBackup(ctx context.Context, ref string) error
	CleanupOrphans(ctx context.Context) (int, error)
	VerifyBackup(ctx context.Context, ref string) (*domain.VerifyResult, error)
	BackupSize(ctx context.Context, ref string) (int64, error)
	RunScheduled(ctx context.Context, includeVolumes bool) error
}
