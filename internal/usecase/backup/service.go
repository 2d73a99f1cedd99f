package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/sync/errgroup"

	"github.com/tsijukebox/jukebox-backup/internal/boundaries/out"
	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

const defaultWorkers = 2

// Service orchestrates backup operations.
type Service struct {
	store       out.MetadataStore
	archiver    out.Archiver
	lister      out.VolumeLister
	locker      out.Locker
	snapshotter *Snapshotter
	config      domain.BackupConfig
	nowFn       func() time.Time
	log         zerowrap.Logger
}

// NewService creates a backup service.
func NewService(
	store out.MetadataStore,
	archiver out.Archiver,
	runtime out.VolumeRuntime,
	lister out.VolumeLister,
	locker out.Locker,
	config domain.BackupConfig,
	log zerowrap.Logger,
) *Service {
	if config.Workers < 1 {
		config.Workers = defaultWorkers
	}
	return &Service{
		store:       store,
		archiver:    archiver,
		lister:      lister,
		locker:      locker,
		snapshotter: NewSnapshotter(runtime, archiver, config),
		config:      config,
		nowFn:       time.Now,
		log:         log,
	}
}

// CreateBackup archives the configuration tree into a fresh slot and,
// when asked, every discovered volume. Volume failures never discard the
// configuration backup; they are reported through the result.
func (s *Service) CreateBackup(ctx context.Context, includeVolumes bool) (*domain.BackupResult, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CreateBackup",
		"include_volumes":     includeVolumes,
	})
	log := zerowrap.FromCtx(ctx)

	started := s.nowFn().UTC()

	release, err := s.locker.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	slot, err := s.store.Allocate(ctx, started)
	if err != nil {
		return nil, fmt.Errorf("%w: allocate slot: %w", domain.ErrBackupFailed, err)
	}
	ctx = zerowrap.CtxWithField(ctx, zerowrap.FieldEntityID, slot.Name)
	log = zerowrap.FromCtx(ctx)

	written, err := s.archiver.Archive(ctx, s.config.ConfigDir, filepath.Join(slot.Path, domain.ConfigDirName))
	if err != nil {
		s.discardSlot(ctx, slot)
		return nil, fmt.Errorf("%w: archive configuration: %w", domain.ErrBackupFailed, err)
	}

	manifest := domain.Manifest{
		CreatedAt: started,
		Version:   s.config.Version,
	}

	var report domain.VolumeReport
	if includeVolumes {
		report = s.backupVolumes(ctx, slot.Path)
		if err := ctx.Err(); err != nil {
			s.discardSlot(ctx, slot)
			return nil, fmt.Errorf("%w: %w", domain.ErrBackupFailed, err)
		}
		applyVolumeReport(&manifest, report)
	}

	if err := s.store.Write(ctx, slot.Path, manifest); err != nil {
		s.discardSlot(ctx, slot)
		return nil, fmt.Errorf("%w: write manifest: %w", domain.ErrBackupFailed, err)
	}
	slot.Manifest = manifest

	result := &domain.BackupResult{
		Slot:     slot,
		Bytes:    written,
		Volumes:  report,
		Duration: s.nowFn().UTC().Sub(started),
	}

	event := log.Info()
	if volErr := report.Err(); volErr != nil {
		event = log.Warn().Err(volErr)
	}
	event.
		Int64(zerowrap.FieldSize, written).
		Int("volumes", len(manifest.Volumes)).
		Int("failed_volumes", len(manifest.FailedVolumes)).
		Msg("backup created")

	return result, nil
}

func applyVolumeReport(manifest *domain.Manifest, report domain.VolumeReport) {
	for _, res := range report.Results {
		if !res.OK() {
			manifest.FailedVolumes = append(manifest.FailedVolumes, res.Name)
			continue
		}
		manifest.Volumes = append(manifest.Volumes, res.Name)
		if res.Archive.Checksum != "" {
			if manifest.Checksums == nil {
				manifest.Checksums = make(map[string]string)
			}
			manifest.Checksums[res.Name] = res.Archive.Checksum
		}
	}
	manifest.IncludeVolumes = len(manifest.Volumes) > 0
}

// discardSlot removes a slot that never received its manifest.
func (s *Service) discardSlot(ctx context.Context, slot domain.BackupSlot) {
	log := zerowrap.FromCtx(ctx)
	if err := s.store.Delete(context.WithoutCancel(ctx), slot.Path); err != nil {
		log.Warn().Err(err).Msg("failed to discard incomplete slot")
	}
}

// RestoreBackup restores the configuration tree of a slot and then its
// volumes. Volume failures are reported and never roll back configuration.
func (s *Service) RestoreBackup(ctx context.Context, ref string) (*domain.RestoreResult, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "RestoreBackup",
		zerowrap.FieldEntityID: ref,
	})
	log := zerowrap.FromCtx(ctx)

	started := s.nowFn()

	release, err := s.locker.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	slot, err := s.completeSlot(ctx, ref)
	if err != nil {
		return nil, err
	}

	written, err := s.archiver.Restore(ctx, filepath.Join(slot.Path, domain.ConfigDirName), s.config.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("%w: restore configuration: %w", domain.ErrBackupFailed, err)
	}

	var report domain.VolumeReport
	if slot.Manifest.IncludeVolumes {
		names := slot.Manifest.Volumes
		if len(names) == 0 {
			names, err = archivedVolumes(slot.Path)
			if err != nil {
				report.DiscoveryErr = err
			}
		}
		if report.DiscoveryErr == nil {
			report = s.restoreArchives(ctx, slot.Path, names, slot.Manifest.Checksums)
		}
	}

	event := log.Info()
	if volErr := report.Err(); volErr != nil {
		event = log.Warn().Err(volErr)
	}
	event.Int64(zerowrap.FieldSize, written).Int("volumes", len(report.Succeeded())).Msg("backup restored")

	return &domain.RestoreResult{
		Slot:     slot,
		Bytes:    written,
		Volumes:  report,
		Duration: s.nowFn().Sub(started),
	}, nil
}

// completeSlot resolves ref and loads its manifest.
func (s *Service) completeSlot(ctx context.Context, ref string) (domain.BackupSlot, error) {
	path, err := s.store.Resolve(ref)
	if err != nil {
		return domain.BackupSlot{}, err
	}
	manifest, err := s.store.Read(ctx, path)
	if err != nil {
		return domain.BackupSlot{}, err
	}
	return domain.BackupSlot{Name: filepath.Base(path), Path: path, Manifest: *manifest}, nil
}

// archivedVolumes lists the volume archives present in a slot.
func archivedVolumes(slotPath string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(slotPath, domain.VolumesDirName, "*"+domain.VolumeArchiveExt))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(match), domain.VolumeArchiveExt))
	}
	sort.Strings(names)
	return names, nil
}

// ListBackups returns every complete slot, newest first, with its size.
func (s *Service) ListBackups(ctx context.Context) ([]domain.BackupSummary, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ListBackups",
	})
	log := zerowrap.FromCtx(ctx)

	slots, err := s.store.Enumerate(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.BackupSummary, 0, len(slots))
	for _, slot := range slots {
		size, err := s.archiver.Size(ctx, slot.Path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Debug().Err(err).Str(zerowrap.FieldEntityID, slot.Name).Msg("slot vanished while listing")
			continue
		}
		summaries = append(summaries, domain.BackupSummary{BackupSlot: slot, SizeBytes: size})
	}
	return summaries, nil
}

// CleanupOldBackups keeps the newest keep slots and removes the rest. It
// continues past individual failures and reports them together.
func (s *Service) CleanupOldBackups(ctx context.Context, keep int) (int, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CleanupOldBackups",
		"keep":                keep,
	})
	log := zerowrap.FromCtx(ctx)

	if keep < 0 {
		return 0, fmt.Errorf("%w: keep must be >= 0, got %d", domain.ErrInvalidArgument, keep)
	}

	release, err := s.locker.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	slots, err := s.store.Enumerate(ctx)
	if err != nil {
		return 0, err
	}
	if len(slots) <= keep {
		return 0, nil
	}

	removed, err := s.deleteAll(ctx, slotPaths(slots[keep:]))
	log.Info().Int(zerowrap.FieldCount, removed).Int("kept", keep).Msg("old backups cleaned up")
	return removed, err
}

func slotPaths(slots []domain.BackupSlot) []string {
	paths := make([]string, 0, len(slots))
	for _, slot := range slots {
		paths = append(paths, slot.Path)
	}
	return paths
}

func (s *Service) deleteAll(ctx context.Context, paths []string) (int, error) {
	var (
		removed int
		errs    []error
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.store.Delete(ctx, path); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", filepath.Base(path), err))
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

// DeleteBackup removes one complete slot.
func (s *Service) DeleteBackup(ctx context.Context, ref string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "DeleteBackup",
		zerowrap.FieldEntityID: ref,
	})

	release, err := s.locker.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	slot, err := s.completeSlot(ctx, ref)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, slot.Path)
}

// CleanupOrphans removes slot directories that never received a manifest.
func (s *Service) CleanupOrphans(ctx context.Context) (int, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CleanupOrphans",
	})
	log := zerowrap.FromCtx(ctx)

	release, err := s.locker.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	orphans, err := s.store.Orphans(ctx)
	if err != nil {
		return 0, err
	}

	removed, err := s.deleteAll(ctx, orphans)
	log.Info().Int(zerowrap.FieldCount, removed).Msg("orphaned slots cleaned up")
	return removed, err
}

// VerifyBackup checks that a slot is complete and that every captured
// volume archive matches its recorded checksum.
func (s *Service) VerifyBackup(ctx context.Context, ref string) (*domain.VerifyResult, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "VerifyBackup",
		zerowrap.FieldEntityID: ref,
	})
	log := zerowrap.FromCtx(ctx)

	slot, err := s.completeSlot(ctx, ref)
	if err != nil {
		return nil, err
	}

	result := &domain.VerifyResult{Slot: slot}

	if info, err := os.Stat(filepath.Join(slot.Path, domain.ConfigDirName)); err != nil || !info.IsDir() {
		result.Problems = append(result.Problems, fmt.Errorf("%w: %s directory missing", domain.ErrBackupNotFound, domain.ConfigDirName))
	}

	for _, name := range slot.Manifest.Volumes {
		if err := s.verifyArchive(ctx, slot, name); err != nil {
			result.Problems = append(result.Problems, err)
		}
	}

	if !result.OK() {
		log.Warn().Int(zerowrap.FieldCount, len(result.Problems)).Msg("backup verification failed")
		return result, errors.Join(result.Problems...)
	}

	log.Info().Int("volumes", len(slot.Manifest.Volumes)).Msg("backup verified")
	return result, nil
}

func (s *Service) verifyArchive(ctx context.Context, slot domain.BackupSlot, name string) error {
	path := filepath.Join(slot.Path, domain.VolumesDirName, domain.VolumeArchiveName(name))
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: volume archive %s missing", domain.ErrBackupNotFound, name)
	}

	expected, ok := slot.Manifest.Checksums[name]
	if !ok {
		return nil
	}
	actual, err := s.archiver.Checksum(ctx, path)
	if err != nil {
		return fmt.Errorf("checksum %s: %w", name, err)
	}
	if actual != expected {
		return fmt.Errorf("%w: volume %s", domain.ErrChecksumMismatch, name)
	}
	return nil
}

// BackupSize returns the logical size of one complete slot.
func (s *Service) BackupSize(ctx context.Context, ref string) (int64, error) {
	slot, err := s.completeSlot(ctx, ref)
	if err != nil {
		return 0, err
	}
	return s.archiver.Size(ctx, slot.Path)
}

// ListVolumes returns the volumes currently discovered for the appliance.
func (s *Service) ListVolumes(ctx context.Context) ([]domain.VolumeRecord, error) {
	return s.lister.ListVolumes(ctx)
}

// BackupVolumes snapshots every discovered volume into slotPath/volumes.
func (s *Service) BackupVolumes(ctx context.Context, slotPath string) (domain.VolumeReport, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "BackupVolumes",
		zerowrap.FieldPath:    slotPath,
	})

	path, err := s.existingSlotDir(slotPath)
	if err != nil {
		return domain.VolumeReport{}, err
	}

	release, err := s.locker.Acquire(ctx)
	if err != nil {
		return domain.VolumeReport{}, err
	}
	defer release()

	report := s.backupVolumes(ctx, path)
	return report, report.Err()
}

// RestoreVolumes restores every discovered volume that has an archive in
// slotPath/volumes.
func (s *Service) RestoreVolumes(ctx context.Context, slotPath string) (domain.VolumeReport, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "RestoreVolumes",
		zerowrap.FieldPath:    slotPath,
	})
	log := zerowrap.FromCtx(ctx)

	path, err := s.existingSlotDir(slotPath)
	if err != nil {
		return domain.VolumeReport{}, err
	}

	release, err := s.locker.Acquire(ctx)
	if err != nil {
		return domain.VolumeReport{}, err
	}
	defer release()

	records, err := s.lister.ListVolumes(ctx)
	if err != nil {
		report := domain.VolumeReport{DiscoveryErr: err}
		return report, report.Err()
	}

	archived, err := archivedVolumes(path)
	if err != nil {
		report := domain.VolumeReport{DiscoveryErr: err}
		return report, report.Err()
	}
	present := make(map[string]bool, len(archived))
	for _, name := range archived {
		present[name] = true
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		if !present[record.Name] {
			log.Debug().Str("volume", record.Name).Msg("no archive for volume, skipping")
			continue
		}
		names = append(names, record.Name)
	}

	var checksums map[string]string
	if manifest, err := s.store.Read(ctx, path); err == nil {
		checksums = manifest.Checksums
	}

	report := s.restoreArchives(ctx, path, names, checksums)
	return report, report.Err()
}

// existingSlotDir confines slotPath to the backup root and requires it to exist.
func (s *Service) existingSlotDir(slotPath string) (string, error) {
	path, err := s.store.Resolve(slotPath)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrBackupNotFound, filepath.Base(path))
	}
	return path, nil
}

func (s *Service) backupVolumes(ctx context.Context, slotPath string) domain.VolumeReport {
	log := zerowrap.FromCtx(ctx)

	records, err := s.lister.ListVolumes(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("volume discovery failed")
		return domain.VolumeReport{DiscoveryErr: err}
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Name)
	}

	volumesDir := filepath.Join(slotPath, domain.VolumesDirName)
	return s.runBatch(ctx, names, func(ctx context.Context, name string) (domain.VolumeArchive, error) {
		return s.snapshotter.Snapshot(ctx, name, filepath.Join(volumesDir, domain.VolumeArchiveName(name)))
	})
}

func (s *Service) restoreArchives(ctx context.Context, slotPath string, names []string, checksums map[string]string) domain.VolumeReport {
	volumesDir := filepath.Join(slotPath, domain.VolumesDirName)
	return s.runBatch(ctx, names, func(ctx context.Context, name string) (domain.VolumeArchive, error) {
		if err := domain.ValidateVolumeName(name); err != nil {
			return domain.VolumeArchive{}, err
		}
		path := filepath.Join(volumesDir, domain.VolumeArchiveName(name))
		if expected, ok := checksums[name]; ok {
			actual, err := s.archiver.Checksum(ctx, path)
			if err != nil {
				return domain.VolumeArchive{}, fmt.Errorf("%w: archive %s: %w", domain.ErrBackupNotFound, name, err)
			}
			if actual != expected {
				return domain.VolumeArchive{}, fmt.Errorf("%w: volume %s", domain.ErrChecksumMismatch, name)
			}
		}
		if err := s.snapshotter.RestoreSnapshot(ctx, name, path); err != nil {
			return domain.VolumeArchive{}, err
		}
		return domain.VolumeArchive{Name: name, Path: path, Checksum: checksums[name]}, nil
	})
}

// runBatch applies fn to every volume on a bounded pool. Every volume is
// attempted; failures are collected per volume and never cancel the rest.
func (s *Service) runBatch(ctx context.Context, names []string, fn func(context.Context, string) (domain.VolumeArchive, error)) domain.VolumeReport {
	log := zerowrap.FromCtx(ctx)

	results := make([]domain.VolumeResult, len(names))

	var g errgroup.Group
	g.SetLimit(s.config.Workers)
	for i, name := range names {
		g.Go(func() error {
			start := time.Now()
			archive, err := fn(ctx, name)
			results[i] = domain.VolumeResult{
				Name:     name,
				Archive:  archive,
				Duration: time.Since(start),
				Err:      err,
			}
			if err != nil {
				log.Warn().Err(err).Str("volume", name).Msg("volume operation failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	return domain.VolumeReport{Results: results}
}

// RunScheduled creates a backup and applies the configured retention.
func (s *Service) RunScheduled(ctx context.Context, includeVolumes bool) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "RunScheduled",
	})
	log := zerowrap.FromCtx(ctx)

	result, err := s.CreateBackup(ctx, includeVolumes)
	if err != nil {
		log.Error().Err(err).Msg("scheduled backup failed")
		return err
	}

	var errs []error
	if volErr := result.Volumes.Err(); volErr != nil {
		errs = append(errs, volErr)
	}

	if _, err := s.CleanupOldBackups(ctx, s.config.Keep); err != nil {
		log.Error().Err(err).Msg("scheduled backup retention failed")
		errs = append(errs, fmt.Errorf("apply retention: %w", err))
	}

	return errors.Join(errs...)
}
