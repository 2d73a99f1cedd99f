package docker

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsijukebox/jukebox-backup/internal/boundaries/out"
	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

// fakeDaemon answers the subset of the Engine API a helper run touches.
type fakeDaemon struct {
	exitCode   int
	stderr     string
	blockWait  bool
	imageFound bool

	mu      sync.Mutex
	created container.CreateRequest
	pulled  atomic.Bool
	removed atomic.Bool
}

func (f *fakeDaemon) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/v1.41")
		switch {
		case path == "/_ping":
			w.Header().Set("API-Version", "1.41")
			_, _ = w.Write([]byte("OK"))

		case r.Method == http.MethodGet && strings.HasPrefix(path, "/images/") && strings.HasSuffix(path, "/json"):
			if !f.imageFound {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"message":"No such image"}`))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"Id":"sha256:helper"}`))

		case r.Method == http.MethodPost && path == "/images/create":
			f.pulled.Store(true)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"Downloaded newer image"}`))

		case r.Method == http.MethodPost && path == "/containers/create":
			f.mu.Lock()
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&f.created))
			f.mu.Unlock()
			assert.True(t, strings.HasPrefix(r.URL.Query().Get("name"), helperNamePrefix))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"Id":"helper123","Warnings":[]}`))

		case r.Method == http.MethodPost && path == "/containers/helper123/start":
			w.WriteHeader(http.StatusNoContent)

		case r.Method == http.MethodPost && path == "/containers/helper123/wait":
			if f.blockWait {
				<-r.Context().Done()
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"StatusCode":` + strconv.Itoa(f.exitCode) + `}`))

		case r.Method == http.MethodGet && path == "/containers/helper123/logs":
			w.Header().Set("Content-Type", "application/vnd.docker.multiplexed-stream")
			_, _ = w.Write(frameDockerStream(1, []byte("ok\n")))
			if f.stderr != "" {
				_, _ = w.Write(frameDockerStream(2, []byte(f.stderr)))
			}

		case r.Method == http.MethodDelete && path == "/containers/helper123":
			assert.Equal(t, "1", r.URL.Query().Get("force"))
			f.removed.Store(true)
			w.WriteHeader(http.StatusNoContent)

		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotImplemented)
		}
	}
}

func newRuntimeForHTTPServer(t *testing.T, server *httptest.Server) *Runtime {
	t.Helper()

	host := strings.TrimPrefix(server.URL, "http://")
	cli, err := client.NewClientWithOpts(client.WithHost("tcp://"+host), client.WithVersion("1.41"), client.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	return NewRuntimeWithClient(cli)
}

func frameDockerStream(streamID byte, payload []byte) []byte {
	frame := make([]byte, 8+len(payload))
	frame[0] = streamID
	binary.BigEndian.PutUint32(frame[4:8], uint32(len(payload)))
	copy(frame[8:], payload)
	return frame
}

func snapshotSpec() out.HelperSpec {
	return out.HelperSpec{
		Image: "alpine:3.20",
		Cmd:   []string{"tar", "-czf", "/backup/db.archive", "-C", "/volume", "."},
		Mounts: []out.HelperMount{
			{Type: out.MountVolume, Source: "tsijukebox_db", Target: "/volume", ReadOnly: true},
			{Type: out.MountBind, Source: "/srv/backups/slot/volumes", Target: "/backup"},
		},
	}
}

func TestRuntime_RunHelper_Success(t *testing.T) {
	daemon := &fakeDaemon{imageFound: true}
	server := httptest.NewServer(daemon.handler(t))
	defer server.Close()

	result, err := newRuntimeForHTTPServer(t, server).RunHelper(context.Background(), snapshotSpec())
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, []byte("ok\n"), result.Stdout)
	assert.True(t, daemon.removed.Load(), "helper must be removed")
	assert.False(t, daemon.pulled.Load())

	daemon.mu.Lock()
	defer daemon.mu.Unlock()
	assert.Equal(t, "alpine:3.20", daemon.created.Image)
	assert.Equal(t, "true", daemon.created.Labels[helperLabel])
	require.NotNil(t, daemon.created.HostConfig)
	require.Len(t, daemon.created.HostConfig.Mounts, 2)
	assert.Equal(t, mount.TypeVolume, daemon.created.HostConfig.Mounts[0].Type)
	assert.True(t, daemon.created.HostConfig.Mounts[0].ReadOnly)
	assert.Equal(t, mount.TypeBind, daemon.created.HostConfig.Mounts[1].Type)
}

func TestRuntime_RunHelper_PullsMissingImage(t *testing.T) {
	daemon := &fakeDaemon{imageFound: false}
	server := httptest.NewServer(daemon.handler(t))
	defer server.Close()

	_, err := newRuntimeForHTTPServer(t, server).RunHelper(context.Background(), snapshotSpec())
	require.NoError(t, err)
	assert.True(t, daemon.pulled.Load())
}

func TestRuntime_RunHelper_NonZeroExitStillRemoves(t *testing.T) {
	daemon := &fakeDaemon{imageFound: true, exitCode: 2, stderr: "tar: /volume: Cannot open\n"}
	server := httptest.NewServer(daemon.handler(t))
	defer server.Close()

	result, err := newRuntimeForHTTPServer(t, server).RunHelper(context.Background(), snapshotSpec())
	require.NoError(t, err)
	assert.Equal(t, 2, result.ExitCode)
	assert.Contains(t, string(result.Stderr), "Cannot open")
	assert.True(t, daemon.removed.Load())
}

func TestRuntime_RunHelper_DeadlineRemovesHelper(t *testing.T) {
	daemon := &fakeDaemon{imageFound: true, blockWait: true}
	server := httptest.NewServer(daemon.handler(t))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := newRuntimeForHTTPServer(t, server).RunHelper(ctx, snapshotSpec())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, daemon.removed.Load(), "helper must be removed after a timeout")
}

func TestRuntime_RunHelper_RejectsEmptySpec(t *testing.T) {
	r := &Runtime{}

	tests := []struct {
		name string
		spec out.HelperSpec
	}{
		{name: "no image", spec: out.HelperSpec{Cmd: []string{"true"}}},
		{name: "no command", spec: out.HelperSpec{Image: "alpine:3.20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.RunHelper(context.Background(), tt.spec)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Nil(t, result)
		})
	}
}

func TestRuntime_VolumeExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1.41/volumes/present":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"Name":"present","Driver":"local"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"no such volume"}`))
		}
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)

	exists, err := runtime.VolumeExists(context.Background(), "present")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = runtime.VolumeExists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRuntime_InspectVolume(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1.41/volumes/present":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"Name":"present","Driver":"local","CreatedAt":"2026-10-01T02:00:00Z","Mountpoint":"/var/lib/docker/volumes/present/_data"}`))
		case "/v1.41/volumes/broken":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"daemon error"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"no such volume"}`))
		}
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)

	info, err := runtime.InspectVolume(context.Background(), "present")
	require.NoError(t, err)
	assert.Equal(t, &out.VolumeInfo{
		Name:       "present",
		CreatedAt:  "2026-10-01T02:00:00Z",
		Mountpoint: "/var/lib/docker/volumes/present/_data",
	}, info)

	info, err = runtime.InspectVolume(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, info)

	_, err = runtime.InspectVolume(context.Background(), "broken")
	assert.Error(t, err)
}

func TestDemuxOutput_SplitsStdoutAndStderr(t *testing.T) {
	stream := append(frameDockerStream(1, []byte("hello\n")), frameDockerStream(2, []byte("warn\n"))...)

	stdout, stderr, err := demuxOutput(bytes.NewReader(stream))

	require.NoError(t, err)
	assert.Equal(t, []byte("hello\n"), stdout)
	assert.Equal(t, []byte("warn\n"), stderr)
}
