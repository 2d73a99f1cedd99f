package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/zerowrap"
	"github.com/zeebo/blake3"

	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

// copyBufferSize is the fixed chunk used for every file copy.
const copyBufferSize = 1 << 20

// Archiver mirrors directory trees between the live system and a backup slot.
// Symbolic links are recreated as links and never followed.
type Archiver struct {
	bufferSize int
}

// NewArchiver creates a new filesystem archiver.
func NewArchiver() *Archiver {
	return &Archiver{bufferSize: copyBufferSize}
}

// Archive copies sourceDir into destDir and returns the bytes of regular file
// content written.
func (a *Archiver) Archive(ctx context.Context, sourceDir, destDir string) (int64, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "filesystem",
		zerowrap.FieldAction:  "Archive",
		"source":              sourceDir,
		"dest":                destDir,
	})
	return a.mirror(ctx, sourceDir, destDir)
}

// Restore copies a slot subtree back over destDir. Existing files are
// overwritten, files absent from the backup are left untouched.
func (a *Archiver) Restore(ctx context.Context, sourceDir, destDir string) (int64, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "filesystem",
		zerowrap.FieldAction:  "Restore",
		"source":              sourceDir,
		"dest":                destDir,
	})
	return a.mirror(ctx, sourceDir, destDir)
}

type dirAttrs struct {
	path string
	mode fs.FileMode
}

func (a *Archiver) mirror(ctx context.Context, sourceDir, destDir string) (int64, error) {
	log := zerowrap.FromCtx(ctx)

	info, err := os.Stat(sourceDir)
	if err != nil {
		return 0, fmt.Errorf("%w: source %s: %w", domain.ErrInvalidArgument, sourceDir, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: source %s is not a directory", domain.ErrInvalidArgument, sourceDir)
	}
	if resolved, err := filepath.EvalSymlinks(sourceDir); err == nil {
		sourceDir = resolved
	}
	if pathWithinRoot(sourceDir, destDir) {
		return 0, fmt.Errorf("%w: destination %s is inside source %s", domain.ErrInvalidArgument, destDir, sourceDir)
	}

	buf := make([]byte, a.bufferSize)
	var (
		written int64
		files   int
		dirs    []dirAttrs
	)

	err = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return ioFailure(path, walkErr)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return ioFailure(path, err)
		}
		target := filepath.Join(destDir, rel)

		info, err := d.Info()
		if err != nil {
			return ioFailure(path, err)
		}

		switch {
		case d.IsDir():
			// Owner keeps write access until the walk is done so children
			// can be created; final bits are applied afterwards.
			if err := os.MkdirAll(target, info.Mode().Perm()|0700); err != nil {
				return ioFailure(target, err)
			}
			dirs = append(dirs, dirAttrs{path: target, mode: info.Mode().Perm()})
			return nil

		case d.Type()&fs.ModeSymlink != 0:
			return copySymlink(path, target)

		case d.Type().IsRegular():
			n, err := copyFile(path, target, info, buf)
			written += n
			files++
			return err

		default:
			log.Debug().Str(zerowrap.FieldPath, path).Str("mode", info.Mode().String()).Msg("skipping special file")
			return nil
		}
	})
	if err != nil {
		return written, err
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		if err := os.Chmod(dirs[i].path, dirs[i].mode); err != nil {
			return written, ioFailure(dirs[i].path, err)
		}
	}

	log.Debug().Int(zerowrap.FieldCount, files).Int64(zerowrap.FieldSize, written).Msg("tree copied")
	return written, nil
}

func copyFile(src, dst string, info fs.FileInfo, buf []byte) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, ioFailure(src, err)
	}
	defer in.Close()

	if err := clearNonRegular(dst); err != nil {
		return 0, err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, ioFailure(dst, err)
	}

	n, err := io.CopyBuffer(out, in, buf)
	if err != nil {
		_ = out.Close()
		return n, ioFailure(dst, err)
	}
	if err := out.Close(); err != nil {
		return n, ioFailure(dst, err)
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return n, ioFailure(dst, err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return n, ioFailure(dst, err)
	}
	return n, nil
}

func copySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return ioFailure(src, err)
	}
	if err := clearNonRegular(dst); err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ioFailure(dst, err)
	}
	if err := os.Symlink(link, dst); err != nil {
		return ioFailure(dst, err)
	}
	return nil
}

// clearNonRegular removes a symlink sitting where a file will be written so
// the write never goes through the link. A directory in the way is an error.
func clearNonRegular(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return ioFailure(path, err)
	}
	if info.IsDir() {
		return ioFailure(path, fmt.Errorf("a directory is in the way"))
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		if err := os.Remove(path); err != nil {
			return ioFailure(path, err)
		}
	}
	return nil
}

func ioFailure(path string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrIOFailure, path, err)
}

// Size returns the sum of regular file sizes under path.
func (a *Archiver) Size(ctx context.Context, path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrNotExist) && p != path {
				return nil
			}
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to size %s: %w", path, err)
	}
	return total, nil
}

// Checksum returns the BLAKE3 digest of a file as lowercase hex.
func (a *Archiver) Checksum(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", ioFailure(path, err)
	}
	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
