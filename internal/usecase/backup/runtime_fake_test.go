package backup

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tsijukebox/jukebox-backup/internal/boundaries/out"
)

// tarRuntime emulates the helper container on the host: every volume is a
// directory under root and the helper's tar commands run in-process.
type tarRuntime struct {
	mu      sync.Mutex
	root    string
	volumes map[string]string
	exit    map[string]int
	runs    int
	serial  int

	// beforeRun is called with the mounted volume right before a helper runs.
	beforeRun func(volume string)
}

func newTarRuntime(root string) *tarRuntime {
	return &tarRuntime{
		root:    root,
		volumes: make(map[string]string),
		exit:    make(map[string]int),
	}
}

func (r *tarRuntime) volumeDir(name string) string {
	return filepath.Join(r.root, name)
}

func (r *tarRuntime) addVolume(name string, files map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createLocked(name)
	dir := r.volumeDir(name)
	_ = os.MkdirAll(dir, 0755)
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		_ = os.MkdirAll(filepath.Dir(path), 0755)
		_ = os.WriteFile(path, []byte(content), 0644)
	}
}

func (r *tarRuntime) failVolume(name string, code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exit[name] = code
}

// createLocked registers a new incarnation of name. Callers hold r.mu.
func (r *tarRuntime) createLocked(name string) {
	r.serial++
	r.volumes[name] = fmt.Sprintf("incarnation-%d", r.serial)
}

func (r *tarRuntime) VolumeExists(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.volumes[name]
	return ok, nil
}

func (r *tarRuntime) InspectVolume(_ context.Context, name string) (*out.VolumeInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created, ok := r.volumes[name]
	if !ok {
		return nil, nil
	}
	return &out.VolumeInfo{Name: name, CreatedAt: created, Mountpoint: r.volumeDir(name)}, nil
}

func (r *tarRuntime) CreateVolume(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createLocked(name)
	return os.MkdirAll(r.volumeDir(name), 0755)
}

func (r *tarRuntime) RemoveVolume(_ context.Context, name string, _ bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.volumes, name)
	return os.RemoveAll(r.volumeDir(name))
}

func (r *tarRuntime) RunHelper(ctx context.Context, spec out.HelperSpec) (*out.HelperResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var volume, backupDir string
	for _, m := range spec.Mounts {
		switch m.Type {
		case out.MountVolume:
			volume = m.Source
		case out.MountBind:
			backupDir = m.Source
		}
	}

	if r.beforeRun != nil {
		r.beforeRun(volume)
	}

	r.mu.Lock()
	r.runs++
	code := r.exit[volume]
	if _, ok := r.volumes[volume]; !ok && volume != "" {
		// Mounting a missing named volume creates it, as the docker daemon does.
		r.createLocked(volume)
		_ = os.MkdirAll(r.volumeDir(volume), 0755)
	}
	r.mu.Unlock()
	if code != 0 {
		return &out.HelperResult{ExitCode: code, Stderr: []byte("tar: simulated failure")}, nil
	}

	if len(spec.Cmd) < 3 || spec.Cmd[0] != "tar" {
		return &out.HelperResult{ExitCode: 127, Stderr: []byte("unknown command")}, nil
	}
	archive := filepath.Join(backupDir, strings.TrimPrefix(spec.Cmd[2], helperBackupMount+"/"))

	var err error
	switch spec.Cmd[1] {
	case "-czf":
		err = tarDir(r.volumeDir(volume), archive)
	case "-xzf":
		err = untarInto(archive, r.volumeDir(volume))
	default:
		err = fmt.Errorf("unsupported tar mode %s", spec.Cmd[1])
	}
	if err != nil {
		return &out.HelperResult{ExitCode: 2, Stderr: []byte(err.Error())}, nil
	}
	return &out.HelperResult{}, nil
}

func tarDir(src, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil || rel == "." {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(tw, in)
		return err
	})
	if err != nil {
		return err
	}
	if err := tw.Close(); err != nil {
		return err
	}
	return gz.Close()
}

func untarInto(src, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		target := filepath.Join(dest, filepath.FromSlash(hdr.Name))
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			outFile, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fs.FileMode(hdr.Mode).Perm())
			if err != nil {
				return err
			}
			if _, err := io.Copy(outFile, tr); err != nil {
				outFile.Close()
				return err
			}
			if err := outFile.Close(); err != nil {
				return err
			}
		}
	}
}
