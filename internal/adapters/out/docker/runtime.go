// Package docker implements the volume runtime adapter using Docker API.
package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/zerowrap"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/google/uuid"

	"github.com/tsijukebox/jukebox-backup/internal/boundaries/out"
	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

const (
	helperNamePrefix = "jukebox-backup-helper-"
	helperLabel      = "tsijukebox.backup.helper"
	managedLabel     = "tsijukebox.managed"

	// teardownTimeout bounds helper removal, which runs on its own context.
	teardownTimeout = 30 * time.Second
)

// Runtime implements the VolumeRuntime interface using Docker API.
type Runtime struct {
	client *client.Client
}

// NewRuntime creates a new Docker runtime instance.
func NewRuntime() (*Runtime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &Runtime{
		client: cli,
	}, nil
}

// NewRuntimeWithClient creates a new Docker runtime instance with a custom client (for testing).
func NewRuntimeWithClient(cli *client.Client) *Runtime {
	return &Runtime{
		client: cli,
	}
}

// Close releases the underlying client.
func (r *Runtime) Close() error {
	return r.client.Close()
}

// Ping checks that the Docker daemon is reachable.
func (r *Runtime) Ping(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "Ping",
	})
	log := zerowrap.FromCtx(ctx)

	_, err := r.client.Ping(ctx)
	if err != nil {
		return log.WrapErr(err, "Docker ping failed")
	}
	return nil
}

// VolumeExists checks if a Docker volume exists.
func (r *Runtime) VolumeExists(ctx context.Context, volumeName string) (bool, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "VolumeExists",
		"volume":              volumeName,
	})
	log := zerowrap.FromCtx(ctx)

	_, err := r.client.VolumeInspect(ctx, volumeName)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return false, nil
		}
		return false, log.WrapErr(err, "failed to inspect volume")
	}
	return true, nil
}

// InspectVolume returns the identity of a Docker volume, or nil when the
// volume does not exist.
func (r *Runtime) InspectVolume(ctx context.Context, volumeName string) (*out.VolumeInfo, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "InspectVolume",
		"volume":              volumeName,
	})
	log := zerowrap.FromCtx(ctx)

	vol, err := r.client.VolumeInspect(ctx, volumeName)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil, nil
		}
		return nil, log.WrapErr(err, "failed to inspect volume")
	}
	return &out.VolumeInfo{
		Name:       vol.Name,
		CreatedAt:  vol.CreatedAt,
		Mountpoint: vol.Mountpoint,
	}, nil
}

// CreateVolume creates a new Docker volume.
func (r *Runtime) CreateVolume(ctx context.Context, volumeName string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CreateVolume",
		"volume":              volumeName,
	})
	log := zerowrap.FromCtx(ctx)

	_, err := r.client.VolumeCreate(ctx, volume.CreateOptions{
		Name: volumeName,
		Labels: map[string]string{
			managedLabel:         "true",
			"tsijukebox.created": "restore",
		},
	})
	if err != nil {
		return log.WrapErr(err, "failed to create volume")
	}

	log.Info().Msg("volume created")
	return nil
}

// RemoveVolume removes a Docker volume.
func (r *Runtime) RemoveVolume(ctx context.Context, volumeName string, force bool) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "RemoveVolume",
		"volume":              volumeName,
		"force":               force,
	})
	log := zerowrap.FromCtx(ctx)

	err := r.client.VolumeRemove(ctx, volumeName, force)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			log.Debug().Msg("volume not found, already removed")
			return nil
		}
		return log.WrapErr(err, "failed to remove volume")
	}

	log.Info().Msg("volume removed")
	return nil
}

// RunHelper creates, starts and waits for a helper container, then collects
// its output. The container is force-removed on every exit path.
func (r *Runtime) RunHelper(ctx context.Context, spec out.HelperSpec) (*out.HelperResult, error) {
	name := helperNamePrefix + uuid.NewString()[:12]
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "RunHelper",
		"container_name":      name,
		"image":               spec.Image,
	})
	log := zerowrap.FromCtx(ctx)

	if spec.Image == "" || len(spec.Cmd) == 0 {
		return nil, fmt.Errorf("%w: helper needs an image and a command", domain.ErrInvalidArgument)
	}

	if err := r.ensureImage(ctx, spec.Image); err != nil {
		return nil, err
	}

	labels := map[string]string{helperLabel: "true", managedLabel: "true"}
	for k, v := range spec.Labels {
		labels[k] = v
	}

	resp, err := r.client.ContainerCreate(ctx, &container.Config{
		Image:  spec.Image,
		Cmd:    spec.Cmd,
		Labels: labels,
	}, &container.HostConfig{
		Mounts: toDockerMounts(spec.Mounts),
	}, nil, nil, name)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("create helper %s: %w", name, ctx.Err())
		}
		return nil, log.WrapErr(err, "failed to create helper container")
	}

	defer r.teardown(ctx, resp.ID)

	if err := r.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("start helper %s: %w", name, ctx.Err())
		}
		return nil, log.WrapErr(err, "failed to start helper container")
	}

	log.Debug().Strs("cmd", spec.Cmd).Msg("helper started")

	statusCh, errCh := r.client.ContainerWait(ctx, resp.ID, container.WaitConditionNotRunning)
	var status container.WaitResponse
	select {
	case err := <-errCh:
		if ctx.Err() != nil {
			return nil, fmt.Errorf("wait for helper %s: %w", name, ctx.Err())
		}
		return nil, log.WrapErr(err, "failed to wait for helper container")
	case status = <-statusCh:
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for helper %s: %w", name, ctx.Err())
	}

	stdout, stderr, err := r.collectLogs(ctx, resp.ID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to collect helper output")
	}

	result := &out.HelperResult{
		ExitCode: int(status.StatusCode),
		Stdout:   stdout,
		Stderr:   stderr,
	}
	if status.Error != nil && status.Error.Message != "" {
		return result, fmt.Errorf("%w: %s", domain.ErrHelperFailure, status.Error.Message)
	}

	log.Debug().Int("exit_code", result.ExitCode).Msg("helper finished")
	return result, nil
}

// ensureImage pulls the helper image when it is not present locally.
func (r *Runtime) ensureImage(ctx context.Context, imageRef string) error {
	log := zerowrap.FromCtx(ctx)

	_, err := r.client.ImageInspect(ctx, imageRef)
	if err == nil {
		return nil
	}
	if !cerrdefs.IsNotFound(err) {
		return log.WrapErr(err, "failed to inspect helper image")
	}

	log.Info().Msg("pulling helper image")

	reader, err := r.client.ImagePull(ctx, imageRef, image.PullOptions{})
	if err != nil {
		return log.WrapErr(err, "failed to pull helper image")
	}
	defer reader.Close()

	// Read the response to completion (this is required for the pull to complete)
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return log.WrapErr(err, "failed to read pull response")
	}
	return nil
}

func (r *Runtime) collectLogs(ctx context.Context, containerID string) ([]byte, []byte, error) {
	logs, err := r.client.ContainerLogs(ctx, containerID, container.LogsOptions{ShowStdout: true, ShowStderr: true})
	if err != nil {
		return nil, nil, err
	}
	defer logs.Close()

	return demuxOutput(logs)
}

// demuxOutput splits a multiplexed Docker stream into stdout and stderr.
func demuxOutput(stream io.Reader) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, stream); err != nil {
		return stdout.Bytes(), stderr.Bytes(), err
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

// teardown force-removes a helper on a fresh context so that caller
// cancellation never leaks a container.
func (r *Runtime) teardown(ctx context.Context, containerID string) {
	log := zerowrap.FromCtx(ctx)

	rmCtx, cancel := context.WithTimeout(context.Background(), teardownTimeout)
	defer cancel()

	err := r.client.ContainerRemove(rmCtx, containerID, container.RemoveOptions{Force: true})
	if err != nil && !cerrdefs.IsNotFound(err) && !errors.Is(err, context.Canceled) {
		log.Warn().Err(err).Str(zerowrap.FieldEntityID, containerID).Msg("failed to remove helper container")
		return
	}
	log.Debug().Str(zerowrap.FieldEntityID, containerID).Msg("helper removed")
}

func toDockerMounts(mounts []out.HelperMount) []mount.Mount {
	result := make([]mount.Mount, 0, len(mounts))
	for _, m := range mounts {
		t := mount.TypeBind
		if m.Type == out.MountVolume {
			t = mount.TypeVolume
		}
		result = append(result, mount.Mount{
			Type:     t,
			Source:   m.Source,
			Target:   m.Target,
			ReadOnly: m.ReadOnly,
		})
	}
	return result
}
