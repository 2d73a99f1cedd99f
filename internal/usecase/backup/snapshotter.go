package backup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/tsijukebox/jukebox-backup/internal/boundaries/out"
	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

const (
	defaultHelperImage   = "alpine:3.20"
	defaultHelperTimeout = 30 * time.Minute
	defaultPerGiBTimeout = 5 * time.Minute

	helperVolumeMount = "/volume"
	helperBackupMount = "/backup"

	stderrTailBytes = 512
	gib             = 1 << 30
)

// Snapshotter copies named volumes in and out of archive files through an
// ephemeral helper container.
type Snapshotter struct {
	runtime       out.VolumeRuntime
	archiver      out.Archiver
	image         string
	timeout       time.Duration
	timeoutPerGiB time.Duration
}

// NewSnapshotter creates a volume snapshotter.
func NewSnapshotter(runtime out.VolumeRuntime, archiver out.Archiver, config domain.BackupConfig) *Snapshotter {
	s := &Snapshotter{
		runtime:       runtime,
		archiver:      archiver,
		image:         config.HelperImage,
		timeout:       config.HelperTimeout,
		timeoutPerGiB: config.HelperTimeoutPerGiB,
	}
	if s.image == "" {
		s.image = defaultHelperImage
	}
	if s.timeout <= 0 {
		s.timeout = defaultHelperTimeout
	}
	if s.timeoutPerGiB <= 0 {
		s.timeoutPerGiB = defaultPerGiBTimeout
	}
	return s
}

// Snapshot writes a gzip tar of volumeName to destFile. The volume is
// mounted read-only; the archive only appears at destFile once complete.
func (s *Snapshotter) Snapshot(ctx context.Context, volumeName, destFile string) (domain.VolumeArchive, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Snapshot",
		"volume":              volumeName,
	})
	log := zerowrap.FromCtx(ctx)

	if err := domain.ValidateVolumeName(volumeName); err != nil {
		return domain.VolumeArchive{}, err
	}

	destFile, err := filepath.Abs(destFile)
	if err != nil {
		return domain.VolumeArchive{}, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}
	dir, file := filepath.Dir(destFile), filepath.Base(destFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return domain.VolumeArchive{}, fmt.Errorf("%w: create %s: %w", domain.ErrIOFailure, dir, err)
	}

	before, err := s.requireVolume(ctx, volumeName)
	if err != nil {
		return domain.VolumeArchive{}, err
	}

	partial := "." + file + ".partial"
	partialPath := filepath.Join(dir, partial)

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	result, err := s.runtime.RunHelper(runCtx, out.HelperSpec{
		Image: s.image,
		Cmd:   []string{"tar", "-czf", helperBackupMount + "/" + partial, "-C", helperVolumeMount, "."},
		Mounts: []out.HelperMount{
			{Type: out.MountVolume, Source: volumeName, Target: helperVolumeMount, ReadOnly: true},
			{Type: out.MountBind, Source: dir, Target: helperBackupMount},
		},
		Labels: map[string]string{"tsijukebox.backup.volume": volumeName},
	})
	if err := s.confirmVolume(ctx, before); err != nil {
		_ = os.Remove(partialPath)
		return domain.VolumeArchive{}, err
	}
	if err := helperError(ctx, runCtx, s.timeout, result, err); err != nil {
		_ = os.Remove(partialPath)
		return domain.VolumeArchive{}, err
	}

	if err := os.Rename(partialPath, destFile); err != nil {
		_ = os.Remove(partialPath)
		return domain.VolumeArchive{}, fmt.Errorf("%w: finalize archive: %w", domain.ErrIOFailure, err)
	}

	info, err := os.Stat(destFile)
	if err != nil {
		return domain.VolumeArchive{}, fmt.Errorf("%w: stat archive: %w", domain.ErrIOFailure, err)
	}
	sum, err := s.archiver.Checksum(ctx, destFile)
	if err != nil {
		return domain.VolumeArchive{}, err
	}

	log.Info().
		Int64(zerowrap.FieldSize, info.Size()).
		Dur(zerowrap.FieldDuration, time.Since(started)).
		Msg("volume snapshot complete")

	return domain.VolumeArchive{
		Name:      volumeName,
		Path:      destFile,
		SizeBytes: info.Size(),
		Checksum:  sum,
	}, nil
}

// RestoreSnapshot extracts srcFile into volumeName, creating the volume if
// needed. Extraction overlays the existing volume content.
func (s *Snapshotter) RestoreSnapshot(ctx context.Context, volumeName, srcFile string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "RestoreSnapshot",
		"volume":              volumeName,
	})
	log := zerowrap.FromCtx(ctx)

	if err := domain.ValidateVolumeName(volumeName); err != nil {
		return err
	}

	srcFile, err := filepath.Abs(srcFile)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}
	info, err := os.Stat(srcFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: archive %s", domain.ErrBackupNotFound, filepath.Base(srcFile))
		}
		return fmt.Errorf("%w: %w", domain.ErrIOFailure, err)
	}

	exists, err := s.runtime.VolumeExists(ctx, volumeName)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrVolumeUnavailable, err)
	}
	if !exists {
		if err := s.runtime.CreateVolume(ctx, volumeName); err != nil {
			return fmt.Errorf("%w: create: %w", domain.ErrVolumeUnavailable, err)
		}
	}

	timeout := s.restoreTimeout(info.Size())
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dir, file := filepath.Dir(srcFile), filepath.Base(srcFile)
	started := time.Now()
	result, err := s.runtime.RunHelper(runCtx, out.HelperSpec{
		Image: s.image,
		Cmd:   []string{"tar", "-xzf", helperBackupMount + "/" + file, "-C", helperVolumeMount},
		Mounts: []out.HelperMount{
			{Type: out.MountVolume, Source: volumeName, Target: helperVolumeMount},
			{Type: out.MountBind, Source: dir, Target: helperBackupMount, ReadOnly: true},
		},
		Labels: map[string]string{"tsijukebox.backup.volume": volumeName},
	})
	if err := helperError(ctx, runCtx, timeout, result, err); err != nil {
		return err
	}

	log.Info().
		Int64(zerowrap.FieldSize, info.Size()).
		Dur(zerowrap.FieldDuration, time.Since(started)).
		Msg("volume restored")
	return nil
}

func (s *Snapshotter) requireVolume(ctx context.Context, volumeName string) (*out.VolumeInfo, error) {
	info, err := s.runtime.InspectVolume(ctx, volumeName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrVolumeUnavailable, err)
	}
	if info == nil {
		return nil, fmt.Errorf("%w: %s does not exist", domain.ErrVolumeUnavailable, volumeName)
	}
	return info, nil
}

// confirmVolume checks that the helper archived the volume seen by
// requireVolume. The runtime silently creates a missing named volume when
// the helper mounts it, so a volume removed in between shows up as a new
// incarnation. That replacement is removed again.
func (s *Snapshotter) confirmVolume(ctx context.Context, before *out.VolumeInfo) error {
	ctx = context.WithoutCancel(ctx)
	log := zerowrap.FromCtx(ctx)

	after, err := s.runtime.InspectVolume(ctx, before.Name)
	if err != nil {
		return fmt.Errorf("%w: re-inspect %s: %w", domain.ErrVolumeUnavailable, before.Name, err)
	}
	if after == nil {
		return fmt.Errorf("%w: %s was removed during the snapshot", domain.ErrVolumeUnavailable, before.Name)
	}
	if after.SameAs(before) {
		return nil
	}

	log.Warn().
		Str("created_before", before.CreatedAt).
		Str("created_after", after.CreatedAt).
		Msg("volume replaced during snapshot, removing the replacement")
	if err := s.runtime.RemoveVolume(ctx, before.Name, false); err != nil {
		log.Warn().Err(err).Msg("failed to remove replacement volume")
	}
	return fmt.Errorf("%w: %s was removed during the snapshot", domain.ErrVolumeUnavailable, before.Name)
}

// restoreTimeout is the base timeout plus an allowance per started GiB.
func (s *Snapshotter) restoreTimeout(size int64) time.Duration {
	gibs := (size + gib - 1) / gib
	return s.timeout + time.Duration(gibs)*s.timeoutPerGiB
}

// helperError maps a helper run outcome to the domain error classes.
func helperError(parent, runCtx context.Context, timeout time.Duration, result *out.HelperResult, err error) error {
	if err == nil && result != nil && result.ExitCode == 0 {
		return nil
	}
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: helper exceeded %s", domain.ErrTimeout, timeout)
	}
	if err != nil {
		if errors.Is(err, domain.ErrHelperFailure) || errors.Is(err, domain.ErrInvalidArgument) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrHelperFailure, err)
	}
	if result == nil {
		return fmt.Errorf("%w: no result", domain.ErrHelperFailure)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: exit code %d: %s", domain.ErrHelperFailure, result.ExitCode, stderrTail(result.Stderr))
	}
	return nil
}

func stderrTail(stderr []byte) string {
	if len(stderr) > stderrTailBytes {
		stderr = stderr[len(stderr)-stderrTailBytes:]
	}
	tail := strings.TrimSpace(string(stderr))
	if tail == "" {
		return "no output"
	}
	return tail
}
