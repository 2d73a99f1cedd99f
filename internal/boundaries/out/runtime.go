// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, filesystem, etc.).
package out

import (
	"context"
)

// VolumeRuntime defines the container runtime operations needed to move
// named volumes in and out of a backup slot.
type VolumeRuntime interface {
	// Volume management
	VolumeExists(ctx context.Context, volumeName string) (bool, error)
	// InspectVolume returns nil and no error when the volume does not exist.
	InspectVolume(ctx context.Context, volumeName string) (*VolumeInfo, error)
	CreateVolume(ctx context.Context, volumeName string) error
	RemoveVolume(ctx context.Context, volumeName string, force bool) error

	// RunHelper runs a short-lived container to completion and removes it on
	// every exit path. The context deadline bounds the whole run.
	RunHelper(ctx context.Context, spec HelperSpec) (*HelperResult, error)
}

// VolumeInfo identifies one incarnation of a named volume. A volume that is
// removed and recreated under the same name gets a new CreatedAt.
type VolumeInfo struct {
	Name       string
	CreatedAt  string
	Mountpoint string
}

// SameAs reports whether both values describe the same volume incarnation.
func (v *VolumeInfo) SameAs(other *VolumeInfo) bool {
	if v == nil || other == nil {
		return false
	}
	return v.Name == other.Name && v.CreatedAt == other.CreatedAt && v.Mountpoint == other.Mountpoint
}

// MountType selects how a helper mount is backed.
type MountType string

const (
	MountVolume MountType = "volume"
	MountBind   MountType = "bind"
)

// HelperMount is one mount point inside a helper container.
type HelperMount struct {
	Type     MountType
	Source   string
	Target   string
	ReadOnly bool
}

// HelperSpec describes a helper container run.
type HelperSpec struct {
	Image  string
	Cmd    []string
	Mounts []HelperMount
	Labels map[string]string
}

// HelperResult holds the result of a helper container run.
type HelperResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}
