package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bnema/zerowrap"
	"gopkg.in/yaml.v3"

	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

// LockFileName is the advisory lock kept in the backup root.
const LockFileName = ".jukebox-backup.lock"

// An unparsable lock younger than this is assumed to be mid-write.
const lockWriteGrace = time.Minute

// LockEntry is the YAML body of the lock file.
type LockEntry struct {
	Pid       int    `yaml:"pid"`
	StartedAt string `yaml:"started_at"`
}

// FileLock is an advisory lock file with stale-owner reclaim.
type FileLock struct {
	path    string
	pid     int
	nowFn   func() time.Time
	aliveFn func(pid int) bool
}

// NewFileLock creates a lock living in rootDir.
func NewFileLock(rootDir string) *FileLock {
	return &FileLock{
		path:    filepath.Join(expandTilde(rootDir), LockFileName),
		pid:     os.Getpid(),
		nowFn:   time.Now,
		aliveFn: isProcessAlive,
	}
}

// Path returns the lock file location.
func (l *FileLock) Path() string {
	return l.path
}

// Acquire takes the lock or fails fast with domain.ErrBackupLocked. The
// returned release function is safe to call more than once.
func (l *FileLock) Acquire(ctx context.Context) (func(), error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "filesystem",
		zerowrap.FieldAction:  "AcquireLock",
		zerowrap.FieldPath:    l.path,
	})
	log := zerowrap.FromCtx(ctx)

	for attempt := 0; attempt < 2; attempt++ {
		err := l.create()
		if err == nil {
			released := false
			return func() {
				if released {
					return
				}
				released = true
				if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
					log.Warn().Err(err).Msg("failed to release backup lock")
				}
			}, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, log.WrapErr(err, "failed to create lock file")
		}

		holder, stale := l.inspect()
		if !stale {
			return nil, fmt.Errorf("%w: held by %s", domain.ErrBackupLocked, holder)
		}

		log.Warn().Str("holder", holder).Msg("reclaiming stale backup lock")
		if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, log.WrapErr(err, "failed to remove stale lock")
		}
	}

	return nil, fmt.Errorf("%w: lost race for %s", domain.ErrBackupLocked, l.path)
}

func (l *FileLock) create() error {
	data, err := yaml.Marshal(&LockEntry{
		Pid:       l.pid,
		StartedAt: l.nowFn().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(l.path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(l.path)
		return err
	}
	return nil
}

// inspect describes the current holder and reports whether it is stale.
func (l *FileLock) inspect() (string, bool) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		// Vanished between create and read: free to retry.
		return "nobody", errors.Is(err, fs.ErrNotExist)
	}

	var entry LockEntry
	if err := yaml.Unmarshal(data, &entry); err != nil || entry.Pid <= 0 {
		info, statErr := os.Stat(l.path)
		if statErr != nil {
			return "unknown owner", true
		}
		return "unknown owner", l.nowFn().Sub(info.ModTime()) > lockWriteGrace
	}

	holder := fmt.Sprintf("pid %d (started %s)", entry.Pid, entry.StartedAt)
	return holder, !l.aliveFn(entry.Pid)
}

func isProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	if err == nil {
		return true
	}
	return !errors.Is(err, syscall.ESRCH)
}
