package out

import (
	"context"
	"time"

	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

// MetadataStore owns slot allocation and the per-slot manifest.
type MetadataStore interface {
	Root() string
	Allocate(ctx context.Context, at time.Time) (domain.BackupSlot, error)
	Write(ctx context.Context, slotPath string, manifest domain.Manifest) error
	Read(ctx context.Context, slotPath string) (*domain.Manifest, error)
	Enumerate(ctx context.Context) ([]domain.BackupSlot, error)
	Orphans(ctx context.Context) ([]string, error)
	Resolve(ref string) (string, error)
	Delete(ctx context.Context, slotPath string) error
}

// Archiver copies directory trees in and out of a slot.
type Archiver interface {
	Archive(ctx context.Context, sourceDir, destDir string) (int64, error)
	Restore(ctx context.Context, sourceDir, destDir string) (int64, error)
	Size(ctx context.Context, path string) (int64, error)
	Checksum(ctx context.Context, path string) (string, error)
}

// Locker serializes mutating operations on the backup root.
type Locker interface {
	Acquire(ctx context.Context) (release func(), err error)
}

// VolumeLister discovers the volumes that belong to the appliance.
type VolumeLister interface {
	ListVolumes(ctx context.Context) ([]domain.VolumeRecord, error)
}
