package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tsijukebox/jukebox-backup/internal/adapters/out/compose"
	"github.com/tsijukebox/jukebox-backup/internal/adapters/out/filesystem"
	"github.com/tsijukebox/jukebox-backup/internal/boundaries/out"
	outmocks "github.com/tsijukebox/jukebox-backup/internal/boundaries/out/mocks"
	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

const (
	volDB    = "tsijukebox_db"
	volMedia = "tsijukebox_media"
	volCache = "tsijukebox_cache"
)

type harness struct {
	svc       *Service
	store     *filesystem.MetadataStore
	archiver  *filesystem.Archiver
	runtime   *tarRuntime
	configDir string
	config    domain.BackupConfig
}

func newHarness(t *testing.T, volumes ...string) *harness {
	t.Helper()

	configDir := filepath.Join(t.TempDir(), "docker")
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "docker-compose.yml"), []byte("services: {}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "nested", "settings.json"), []byte(`{"theme":"dark"}`), 0600))

	store, err := filesystem.NewMetadataStore(filepath.Join(t.TempDir(), "backups"), "tsijukebox", zerowrap.Default())
	require.NoError(t, err)

	h := &harness{
		store:     store,
		archiver:  filesystem.NewArchiver(),
		runtime:   newTarRuntime(t.TempDir()),
		configDir: configDir,
		config: domain.BackupConfig{
			Product:   "tsijukebox",
			ConfigDir: configDir,
			Version:   "1.0.5",
			Keep:      3,
			Workers:   2,
		},
	}
	h.rebuild(compose.NewStaticLister(volumes))
	return h
}

func (h *harness) rebuild(lister out.VolumeLister) {
	h.svc = NewService(h.store, h.archiver, h.runtime, lister, filesystem.NewFileLock(h.store.Root()), h.config, zerowrap.Default())
	h.svc.nowFn = steppingClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), time.Second)
}

func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(step)
		return now
	}
}

// seedSlots writes n complete slots one minute apart and returns their
// names, newest first.
func seedSlots(t *testing.T, store *filesystem.MetadataStore, n int) []string {
	t.Helper()
	base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	names := make([]string, n)
	for i := 0; i < n; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		slot, err := store.Allocate(context.Background(), at)
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(slot.ConfigDir(), 0755))
		require.NoError(t, store.Write(context.Background(), slot.Path, domain.Manifest{CreatedAt: at, Version: "1.0.5"}))
		names[n-1-i] = slot.Name
	}
	return names
}

func listedNames(t *testing.T, svc *Service) []string {
	t.Helper()
	summaries, err := svc.ListBackups(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(summaries))
	for _, s := range summaries {
		names = append(names, s.Name)
	}
	return names
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestService_CreateAndRestoreRoundTrip(t *testing.T) {
	h := newHarness(t, volDB, volMedia)
	h.runtime.addVolume(volDB, map[string]string{"data.db": "rows"})
	h.runtime.addVolume(volMedia, map[string]string{"covers/a.txt": "cover"})
	ctx := context.Background()

	res, err := h.svc.CreateBackup(ctx, true)
	require.NoError(t, err)
	require.NoError(t, res.Volumes.Err())

	assert.True(t, strings.HasPrefix(res.Slot.Name, "tsijukebox_backup_20240301_"))
	assert.True(t, res.Slot.Manifest.IncludeVolumes)
	assert.Equal(t, []string{volDB, volMedia}, res.Slot.Manifest.Volumes)
	assert.Empty(t, res.Slot.Manifest.FailedVolumes)
	assert.Len(t, res.Slot.Manifest.Checksums, 2)
	assert.Equal(t, "1.0.5", res.Slot.Manifest.Version)
	assert.FileExists(t, filepath.Join(res.Slot.Path, domain.VolumesDirName, domain.VolumeArchiveName(volDB)))

	// Diverge the live state.
	require.NoError(t, os.WriteFile(filepath.Join(h.configDir, "docker-compose.yml"), []byte("changed"), 0644))
	require.NoError(t, h.runtime.RemoveVolume(ctx, volDB, true))

	restored, err := h.svc.RestoreBackup(ctx, res.Slot.Name)
	require.NoError(t, err)
	require.NoError(t, restored.Volumes.Err())
	assert.Equal(t, res.Bytes, restored.Bytes)
	assert.ElementsMatch(t, []string{volDB, volMedia}, restored.Volumes.Succeeded())

	assert.Equal(t, "services: {}\n", readFile(t, filepath.Join(h.configDir, "docker-compose.yml")))
	assert.Equal(t, `{"theme":"dark"}`, readFile(t, filepath.Join(h.configDir, "nested", "settings.json")))
	assert.Equal(t, "rows", readFile(t, filepath.Join(h.runtime.volumeDir(volDB), "data.db")))
	assert.Equal(t, "cover", readFile(t, filepath.Join(h.runtime.volumeDir(volMedia), "covers", "a.txt")))

	// Restore never removes the source slot.
	assert.DirExists(t, res.Slot.Path)
}

func TestService_CreateBackup_ConfigOnly(t *testing.T) {
	h := newHarness(t, volDB)
	h.runtime.addVolume(volDB, map[string]string{"data.db": "rows"})

	res, err := h.svc.CreateBackup(context.Background(), false)
	require.NoError(t, err)

	assert.False(t, res.Slot.Manifest.IncludeVolumes)
	assert.Empty(t, res.Volumes.Results)
	assert.NoDirExists(t, filepath.Join(res.Slot.Path, domain.VolumesDirName))
	assert.Equal(t, 0, h.runtime.runs)
}

func TestService_CreateBackup_TenMegabyteScenario(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.RemoveAll(h.configDir))
	require.NoError(t, os.MkdirAll(h.configDir, 0755))

	const mib = 1 << 20
	files := map[string]int{"docker-compose.yml": 2 * mib, "config.json": 3 * mib, "data.db": 5 * mib}
	for name, size := range files {
		require.NoError(t, os.WriteFile(filepath.Join(h.configDir, name), make([]byte, size), 0644))
	}

	res, err := h.svc.CreateBackup(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(10*mib), res.Bytes)
	assert.DirExists(t, res.Slot.Path)

	configSize, err := h.archiver.Size(context.Background(), res.Slot.ConfigDir())
	require.NoError(t, err)
	assert.Equal(t, int64(10*mib), configSize)

	summaries, err := h.svc.ListBackups(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Greater(t, summaries[0].SizeBytes, int64(10*mib), "slot size includes the manifest")
}

func TestService_CreateBackup_ConfigFailureLeavesNoSlot(t *testing.T) {
	h := newHarness(t)
	h.config.ConfigDir = filepath.Join(t.TempDir(), "missing")
	h.rebuild(compose.NewStaticLister(nil))

	res, err := h.svc.CreateBackup(context.Background(), false)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrBackupFailed)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	entries, err := os.ReadDir(h.store.Root())
	require.NoError(t, err)
	assert.Empty(t, entries, "no slot and no lock may remain")
}

func TestService_CreateBackup_PartialVolumeFailure(t *testing.T) {
	h := newHarness(t, volDB, volMedia, volCache)
	h.runtime.addVolume(volDB, map[string]string{"data.db": "rows"})
	h.runtime.addVolume(volMedia, map[string]string{"a.txt": "a"})
	h.runtime.addVolume(volCache, map[string]string{"c.bin": "c"})
	h.runtime.failVolume(volMedia, 1)

	res, err := h.svc.CreateBackup(context.Background(), true)
	require.NoError(t, err, "volume failures never fail the backup")

	volErr := res.Volumes.Err()
	require.Error(t, volErr)
	assert.ErrorIs(t, volErr, domain.ErrPartialVolumeFailure)
	assert.ErrorIs(t, volErr, domain.ErrHelperFailure)
	assert.Contains(t, volErr.Error(), "simulated failure")

	var batch *domain.VolumeBatchError
	require.ErrorAs(t, volErr, &batch)
	assert.Equal(t, 3, batch.Total)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, volMedia, batch.Failures[0].Name)

	manifest := res.Slot.Manifest
	assert.True(t, manifest.IncludeVolumes)
	assert.Equal(t, []string{volDB, volCache}, manifest.Volumes)
	assert.Equal(t, []string{volMedia}, manifest.FailedVolumes)
	assert.True(t, manifest.Partial())

	entries, err := os.ReadDir(filepath.Join(res.Slot.Path, domain.VolumesDirName))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "failed volume leaves no archive behind")

	onDisk, err := h.store.Read(context.Background(), res.Slot.Path)
	require.NoError(t, err)
	assert.Equal(t, []string{volMedia}, onDisk.FailedVolumes)
}

func TestService_CreateBackup_AllVolumesUnavailable(t *testing.T) {
	h := newHarness(t, volDB, volMedia)

	res, err := h.svc.CreateBackup(context.Background(), true)
	require.NoError(t, err)

	volErr := res.Volumes.Err()
	assert.ErrorIs(t, volErr, domain.ErrVolumeUnavailable)
	assert.False(t, errors.Is(volErr, domain.ErrPartialVolumeFailure))
	assert.False(t, res.Slot.Manifest.IncludeVolumes)
	assert.Equal(t, []string{volDB, volMedia}, res.Slot.Manifest.FailedVolumes)
}

func TestService_CreateBackup_DiscoveryFailureKeepsConfig(t *testing.T) {
	h := newHarness(t)
	lister := outmocks.NewMockVolumeLister(t)
	lister.EXPECT().ListVolumes(mock.Anything).Return(nil, errors.New("compose file unreadable"))
	h.rebuild(lister)

	res, err := h.svc.CreateBackup(context.Background(), true)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Volumes.Err(), domain.ErrVolumeUnavailable)
	assert.False(t, res.Slot.Manifest.IncludeVolumes)
	assert.FileExists(t, filepath.Join(res.Slot.ConfigDir(), "docker-compose.yml"))
}

func TestService_CreateBackup_LockHeld(t *testing.T) {
	h := newHarness(t)
	release, err := filesystem.NewFileLock(h.store.Root()).Acquire(context.Background())
	require.NoError(t, err)

	_, err = h.svc.CreateBackup(context.Background(), false)
	assert.ErrorIs(t, err, domain.ErrBackupLocked)
	_, err = h.svc.CleanupOldBackups(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrBackupLocked)

	// Reads do not take the lock.
	_, err = h.svc.ListBackups(context.Background())
	assert.NoError(t, err)

	release()
	_, err = h.svc.CreateBackup(context.Background(), false)
	assert.NoError(t, err)
}

func TestService_RestoreBackup_Errors(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.RestoreBackup(context.Background(), "tsijukebox_backup_20200101_000000")
	assert.ErrorIs(t, err, domain.ErrBackupNotFound)

	_, err = h.svc.RestoreBackup(context.Background(), "../../etc")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestService_RestoreBackup_ChecksumMismatchDoesNotRollBackConfig(t *testing.T) {
	h := newHarness(t, volDB)
	h.runtime.addVolume(volDB, map[string]string{"data.db": "rows"})

	res, err := h.svc.CreateBackup(context.Background(), true)
	require.NoError(t, err)

	archive := filepath.Join(res.Slot.Path, domain.VolumesDirName, domain.VolumeArchiveName(volDB))
	require.NoError(t, os.WriteFile(archive, []byte("tampered"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(h.configDir, "docker-compose.yml"), []byte("changed"), 0644))

	restored, err := h.svc.RestoreBackup(context.Background(), res.Slot.Path)
	require.NoError(t, err)
	assert.ErrorIs(t, restored.Volumes.Err(), domain.ErrChecksumMismatch)
	assert.Equal(t, "services: {}\n", readFile(t, filepath.Join(h.configDir, "docker-compose.yml")))
}

func TestService_RestoreBackup_LegacyManifestGlobsArchives(t *testing.T) {
	h := newHarness(t, volDB)
	h.runtime.addVolume(volDB, map[string]string{"data.db": "rows"})

	res, err := h.svc.CreateBackup(context.Background(), true)
	require.NoError(t, err)

	legacy := `{"created_at": "2024-03-01T10:00:01", "version": "1.0.0", "include_volumes": true}`
	require.NoError(t, os.WriteFile(filepath.Join(res.Slot.Path, domain.ManifestFileName), []byte(legacy), 0644))
	require.NoError(t, h.runtime.RemoveVolume(context.Background(), volDB, true))

	restored, err := h.svc.RestoreBackup(context.Background(), res.Slot.Name)
	require.NoError(t, err)
	assert.Equal(t, []string{volDB}, restored.Volumes.Succeeded())
	assert.Equal(t, "rows", readFile(t, filepath.Join(h.runtime.volumeDir(volDB), "data.db")))
}

func TestService_ListBackupsIsIdempotent(t *testing.T) {
	h := newHarness(t)
	seedSlots(t, h.store, 3)

	first, err := h.svc.ListBackups(context.Background())
	require.NoError(t, err)
	second, err := h.svc.ListBackups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_ListBackups_FiftySlots(t *testing.T) {
	h := newHarness(t)
	want := seedSlots(t, h.store, 50)
	assert.Equal(t, want, listedNames(t, h.svc))
}

func TestService_CleanupOldBackups_Retention(t *testing.T) {
	const n = 4
	for keep := 0; keep <= n+2; keep++ {
		t.Run("keep="+strconv.Itoa(keep), func(t *testing.T) {
			h := newHarness(t)
			names := seedSlots(t, h.store, n)

			removed, err := h.svc.CleanupOldBackups(context.Background(), keep)
			require.NoError(t, err)

			kept := min(keep, n)
			assert.Equal(t, n-kept, removed)
			assert.Equal(t, names[:kept], listedNames(t, h.svc))
		})
	}
}

func TestService_CleanupOldBackups_TwentyKeepFive(t *testing.T) {
	h := newHarness(t)
	names := seedSlots(t, h.store, 20)

	removed, err := h.svc.CleanupOldBackups(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 15, removed)
	assert.Equal(t, names[:5], listedNames(t, h.svc))
}

func TestService_SameSecondBackups(t *testing.T) {
	const prefix = "tsijukebox_backup_20240301_"

	// Twelve creates at 100ms each span two wall-clock seconds.
	want := []string{prefix + "100001_2", prefix + "100001"}
	for seq := 10; seq >= 2; seq-- {
		want = append(want, prefix+"100000_"+strconv.Itoa(seq))
	}
	want = append(want, prefix+"100000")

	tests := []struct {
		name           string
		truncateToSecs bool
	}{
		{name: "sub-second manifests"},
		{name: "second precision manifests", truncateToSecs: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.svc.nowFn = steppingClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), 50*time.Millisecond)
			ctx := context.Background()

			for i := 0; i < 12; i++ {
				res, err := h.svc.CreateBackup(ctx, false)
				require.NoError(t, err)
				if tt.truncateToSecs {
					manifest := res.Slot.Manifest
					manifest.CreatedAt = manifest.CreatedAt.Truncate(time.Second)
					require.NoError(t, h.store.Write(ctx, res.Slot.Path, manifest))
				}
			}

			assert.Equal(t, want, listedNames(t, h.svc))

			removed, err := h.svc.CleanupOldBackups(ctx, 5)
			require.NoError(t, err)
			assert.Equal(t, 7, removed)
			assert.Equal(t, want[:5], listedNames(t, h.svc))
		})
	}
}

func TestService_CleanupOldBackups_NegativeKeepTouchesNothing(t *testing.T) {
	store := outmocks.NewMockMetadataStore(t)
	locker := outmocks.NewMockLocker(t)
	svc := NewService(store, outmocks.NewMockArchiver(t), outmocks.NewMockVolumeRuntime(t), outmocks.NewMockVolumeLister(t), locker, domain.BackupConfig{}, zerowrap.Default())

	removed, err := svc.CleanupOldBackups(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, 0, removed)
}

func TestService_CleanupOldBackups_ContinuesPastFailures(t *testing.T) {
	store := outmocks.NewMockMetadataStore(t)
	locker := outmocks.NewMockLocker(t)
	svc := NewService(store, outmocks.NewMockArchiver(t), outmocks.NewMockVolumeRuntime(t), outmocks.NewMockVolumeLister(t), locker, domain.BackupConfig{}, zerowrap.Default())

	released := false
	locker.EXPECT().Acquire(mock.Anything).Return(func() { released = true }, nil)
	store.EXPECT().Enumerate(mock.Anything).Return([]domain.BackupSlot{
		{Name: "s4", Path: "/b/s4"},
		{Name: "s3", Path: "/b/s3"},
		{Name: "s2", Path: "/b/s2"},
		{Name: "s1", Path: "/b/s1"},
	}, nil)
	store.EXPECT().Delete(mock.Anything, "/b/s3").Return(domain.ErrIOFailure)
	store.EXPECT().Delete(mock.Anything, "/b/s2").Return(nil)
	store.EXPECT().Delete(mock.Anything, "/b/s1").Return(nil)

	removed, err := svc.CleanupOldBackups(context.Background(), 1)
	assert.Equal(t, 2, removed)
	assert.ErrorIs(t, err, domain.ErrIOFailure)
	assert.Contains(t, err.Error(), "s3")
	assert.True(t, released)
}

func TestService_CreateBackup_ManifestFailureDiscardsSlot(t *testing.T) {
	store := outmocks.NewMockMetadataStore(t)
	archiver := outmocks.NewMockArchiver(t)
	locker := outmocks.NewMockLocker(t)
	svc := NewService(store, archiver, outmocks.NewMockVolumeRuntime(t), outmocks.NewMockVolumeLister(t), locker,
		domain.BackupConfig{ConfigDir: "/opt/tsijukebox/docker"}, zerowrap.Default())

	slot := domain.BackupSlot{Name: "tsijukebox_backup_20240301_100000", Path: "/b/tsijukebox_backup_20240301_100000"}
	locker.EXPECT().Acquire(mock.Anything).Return(func() {}, nil)
	store.EXPECT().Allocate(mock.Anything, mock.Anything).Return(slot, nil)
	archiver.EXPECT().Archive(mock.Anything, "/opt/tsijukebox/docker", filepath.Join(slot.Path, domain.ConfigDirName)).Return(42, nil)
	store.EXPECT().Write(mock.Anything, slot.Path, mock.MatchedBy(func(m domain.Manifest) bool {
		return !m.IncludeVolumes && !m.CreatedAt.IsZero()
	})).Return(domain.ErrIOFailure)
	store.EXPECT().Delete(mock.Anything, slot.Path).Return(nil)

	_, err := svc.CreateBackup(context.Background(), false)
	assert.ErrorIs(t, err, domain.ErrBackupFailed)
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestService_OrphansAreInvisible(t *testing.T) {
	h := newHarness(t)
	seedSlots(t, h.store, 2)

	orphan, err := h.store.Allocate(context.Background(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(orphan.ConfigDir(), 0755))

	assert.Len(t, listedNames(t, h.svc), 2)

	_, err = h.svc.BackupSize(context.Background(), orphan.Name)
	assert.ErrorIs(t, err, domain.ErrBackupNotFound)

	removed, err := h.svc.CleanupOldBackups(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.DirExists(t, orphan.Path, "retention never touches incomplete slots")

	removed, err = h.svc.CleanupOrphans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoDirExists(t, orphan.Path)
}

func TestService_DeleteBackup(t *testing.T) {
	h := newHarness(t)
	names := seedSlots(t, h.store, 2)

	require.NoError(t, h.svc.DeleteBackup(context.Background(), names[0]))
	assert.Equal(t, names[1:], listedNames(t, h.svc))

	assert.ErrorIs(t, h.svc.DeleteBackup(context.Background(), names[0]), domain.ErrBackupNotFound)
	assert.ErrorIs(t, h.svc.DeleteBackup(context.Background(), "../outside"), domain.ErrInvalidArgument)
}

func TestService_VerifyBackup(t *testing.T) {
	h := newHarness(t, volDB)
	h.runtime.addVolume(volDB, map[string]string{"data.db": "rows"})

	res, err := h.svc.CreateBackup(context.Background(), true)
	require.NoError(t, err)

	verified, err := h.svc.VerifyBackup(context.Background(), res.Slot.Name)
	require.NoError(t, err)
	assert.True(t, verified.OK())

	archive := filepath.Join(res.Slot.Path, domain.VolumesDirName, domain.VolumeArchiveName(volDB))
	require.NoError(t, os.WriteFile(archive, []byte("bitrot"), 0644))
	require.NoError(t, os.RemoveAll(res.Slot.ConfigDir()))

	verified, err = h.svc.VerifyBackup(context.Background(), res.Slot.Name)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrChecksumMismatch)
	assert.ErrorIs(t, err, domain.ErrBackupNotFound)
	assert.Len(t, verified.Problems, 2)
}

func TestService_BackupSize(t *testing.T) {
	h := newHarness(t)
	res, err := h.svc.CreateBackup(context.Background(), false)
	require.NoError(t, err)

	size, err := h.svc.BackupSize(context.Background(), res.Slot.Name)
	require.NoError(t, err)
	assert.Greater(t, size, res.Bytes)
}

func TestService_BackupAndRestoreVolumes(t *testing.T) {
	h := newHarness(t, volDB, volMedia)
	h.runtime.addVolume(volDB, map[string]string{"data.db": "rows"})
	h.runtime.addVolume(volMedia, map[string]string{"a.txt": "a"})

	res, err := h.svc.CreateBackup(context.Background(), false)
	require.NoError(t, err)

	report, err := h.svc.BackupVolumes(context.Background(), res.Slot.Path)
	require.NoError(t, err)
	assert.Equal(t, []string{volDB, volMedia}, report.Succeeded())
	for _, r := range report.Results {
		assert.NotEmpty(t, r.Archive.Checksum)
		assert.FileExists(t, r.Archive.Path)
	}

	require.NoError(t, h.runtime.RemoveVolume(context.Background(), volDB, true))
	require.NoError(t, os.Remove(filepath.Join(res.Slot.Path, domain.VolumesDirName, domain.VolumeArchiveName(volMedia))))

	report, err = h.svc.RestoreVolumes(context.Background(), res.Slot.Path)
	require.NoError(t, err)
	assert.Equal(t, []string{volDB}, report.Succeeded(), "volumes without an archive are skipped")
	assert.Equal(t, "rows", readFile(t, filepath.Join(h.runtime.volumeDir(volDB), "data.db")))

	_, err = h.svc.RestoreVolumes(context.Background(), filepath.Join(h.store.Root(), "tsijukebox_backup_19990101_000000"))
	assert.ErrorIs(t, err, domain.ErrBackupNotFound)
}

func TestService_BackupVolumes_ReportsFailures(t *testing.T) {
	h := newHarness(t, volDB, "bad name")
	h.runtime.addVolume(volDB, map[string]string{"data.db": "rows"})

	res, err := h.svc.CreateBackup(context.Background(), false)
	require.NoError(t, err)

	report, err := h.svc.BackupVolumes(context.Background(), res.Slot.Path)
	assert.ErrorIs(t, err, domain.ErrPartialVolumeFailure)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, []string{volDB}, report.Succeeded())
	require.Len(t, report.Failed(), 1)
	assert.Equal(t, "bad name", report.Failed()[0].Name)
}

func TestService_RunScheduledAppliesRetention(t *testing.T) {
	h := newHarness(t)
	h.config.Keep = 2
	h.rebuild(compose.NewStaticLister(nil))

	for i := 0; i < 3; i++ {
		require.NoError(t, h.svc.RunScheduled(context.Background(), false))
	}
	assert.Len(t, listedNames(t, h.svc), 2)
}

func TestService_RunScheduledReportsVolumeFailures(t *testing.T) {
	h := newHarness(t, volDB)

	err := h.svc.RunScheduled(context.Background(), true)
	assert.ErrorIs(t, err, domain.ErrVolumeUnavailable)
	assert.Len(t, listedNames(t, h.svc), 1)
}

func TestService_ListVolumes(t *testing.T) {
	h := newHarness(t, volDB, volMedia)
	volumes, err := h.svc.ListVolumes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.VolumeRecord{{Name: volDB}, {Name: volMedia}}, volumes)
}

func TestNewService_NormalizesWorkers(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil, domain.BackupConfig{Workers: 0}, zerowrap.Default())
	assert.Equal(t, defaultWorkers, svc.config.Workers)
}
