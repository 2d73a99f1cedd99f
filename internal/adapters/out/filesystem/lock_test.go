package filesystem

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

func TestFileLock_AcquireAndRelease(t *testing.T) {
	lock := NewFileLock(t.TempDir())

	release, err := lock.Acquire(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, lock.Path())

	data, err := os.ReadFile(lock.Path())
	require.NoError(t, err)
	var entry LockEntry
	require.NoError(t, yaml.Unmarshal(data, &entry))
	assert.Equal(t, os.Getpid(), entry.Pid)
	assert.NotEmpty(t, entry.StartedAt)

	release()
	release()
	assert.NoFileExists(t, lock.Path())

	release, err = lock.Acquire(context.Background())
	require.NoError(t, err)
	release()
}

func TestFileLock_HeldByLiveProcess(t *testing.T) {
	lock := NewFileLock(t.TempDir())

	release, err := lock.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	_, err = lock.Acquire(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackupLocked)
}

func TestFileLock_ReclaimsStaleLock(t *testing.T) {
	lock := NewFileLock(t.TempDir())
	lock.aliveFn = func(pid int) bool { return pid != 424242 }

	data, err := yaml.Marshal(&LockEntry{Pid: 424242, StartedAt: "2024-01-05T12:00:00Z"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(lock.Path(), data, 0600))

	release, err := lock.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	data, err = os.ReadFile(lock.Path())
	require.NoError(t, err)
	var entry LockEntry
	require.NoError(t, yaml.Unmarshal(data, &entry))
	assert.Equal(t, os.Getpid(), entry.Pid)
}

func TestFileLock_UnparsableLock(t *testing.T) {
	lock := NewFileLock(t.TempDir())
	require.NoError(t, os.WriteFile(lock.Path(), nil, 0600))

	_, err := lock.Acquire(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackupLocked, "a fresh empty lock may be mid-write")

	lock.nowFn = func() time.Time { return time.Now().Add(2 * lockWriteGrace) }
	release, err := lock.Acquire(context.Background())
	require.NoError(t, err)
	release()
}
