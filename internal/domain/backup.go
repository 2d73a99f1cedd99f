package domain

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Slot layout inside the backup root.
const (
	ManifestFileName = "metadata.json"
	ConfigDirName    = "config"
	VolumesDirName   = "volumes"
	VolumeArchiveExt = ".archive"
	SlotTimeLayout   = "20060102_150405"
)

// Manifest is the metadata.json record that makes a slot visible.
type Manifest struct {
	CreatedAt      time.Time
	Version        string
	IncludeVolumes bool
	// Volumes lists the volume archives captured in this slot.
	Volumes []string
	// FailedVolumes lists volumes that were requested but could not be captured.
	FailedVolumes []string
	// Checksums maps volume name to the BLAKE3 hex digest of its archive.
	Checksums map[string]string
}

// Partial reports whether some requested volumes are missing from the slot.
func (m Manifest) Partial() bool {
	return len(m.FailedVolumes) > 0
}

type manifestJSON struct {
	CreatedAt      string            `json:"created_at"`
	Version        string            `json:"version"`
	IncludeVolumes bool              `json:"include_volumes"`
	Volumes        []string          `json:"volumes,omitempty"`
	FailedVolumes  []string          `json:"failed_volumes,omitempty"`
	Checksums      map[string]string `json:"checksums,omitempty"`
}

// manifestTimeLayouts are accepted for created_at, most specific first.
var manifestTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// MarshalJSON encodes created_at as an ISO-8601 string.
func (m Manifest) MarshalJSON() ([]byte, error) {
	return json.Marshal(manifestJSON{
		CreatedAt:      m.CreatedAt.UTC().Format(time.RFC3339Nano),
		Version:        m.Version,
		IncludeVolumes: m.IncludeVolumes,
		Volumes:        m.Volumes,
		FailedVolumes:  m.FailedVolumes,
		Checksums:      m.Checksums,
	})
}

// UnmarshalJSON accepts created_at with or without a zone offset.
// Timestamps without an offset are read as UTC.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var raw manifestJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	createdAt, err := ParseManifestTime(raw.CreatedAt)
	if err != nil {
		return err
	}

	*m = Manifest{
		CreatedAt:      createdAt,
		Version:        raw.Version,
		IncludeVolumes: raw.IncludeVolumes,
		Volumes:        raw.Volumes,
		FailedVolumes:  raw.FailedVolumes,
		Checksums:      raw.Checksums,
	}
	return nil
}

// ParseManifestTime parses an ISO-8601 created_at value.
func ParseManifestTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("created_at is empty")
	}
	for _, layout := range manifestTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("created_at %q is not an ISO-8601 timestamp", value)
}

// BackupSlot is one complete backup directory under the backup root.
type BackupSlot struct {
	Name     string
	Path     string
	Manifest Manifest
}

// ConfigDir returns the slot's configuration subtree.
func (s BackupSlot) ConfigDir() string {
	return filepath.Join(s.Path, ConfigDirName)
}

// BackupSummary is a listed slot with its derived logical size.
type BackupSummary struct {
	BackupSlot
	SizeBytes int64
}

// VolumeRecord is a volume discovered for the duration of one call.
type VolumeRecord struct {
	Name string
}

// VolumeArchive describes one captured volume archive.
type VolumeArchive struct {
	Name      string
	Path      string
	SizeBytes int64
	Checksum  string
}

// VolumeResult is the outcome for a single volume in a batch.
type VolumeResult struct {
	Name     string
	Archive  VolumeArchive
	Duration time.Duration
	Err      error
}

// OK reports whether the volume succeeded.
func (r VolumeResult) OK() bool {
	return r.Err == nil
}

// VolumeReport aggregates a batch volume operation.
type VolumeReport struct {
	Results []VolumeResult
	// DiscoveryErr is set when the volume list itself could not be obtained.
	DiscoveryErr error
}

// Succeeded returns the names of the volumes that succeeded.
func (r VolumeReport) Succeeded() []string {
	names := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		if res.OK() {
			names = append(names, res.Name)
		}
	}
	return names
}

// Failed returns the failed results.
func (r VolumeReport) Failed() []VolumeResult {
	var failed []VolumeResult
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err returns a *VolumeBatchError when at least one volume failed.
func (r VolumeReport) Err() error {
	if r.DiscoveryErr != nil {
		return fmt.Errorf("%w: volume discovery: %w", ErrVolumeUnavailable, r.DiscoveryErr)
	}
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return &VolumeBatchError{Total: len(r.Results), Failures: failed}
}

// BackupResult is returned by a successful CreateBackup.
type BackupResult struct {
	Slot     BackupSlot
	Bytes    int64
	Volumes  VolumeReport
	Duration time.Duration
}

// RestoreResult is returned by RestoreBackup once the configuration is restored.
type RestoreResult struct {
	Slot     BackupSlot
	Bytes    int64
	Volumes  VolumeReport
	Duration time.Duration
}

// VerifyResult describes the integrity of one slot.
type VerifyResult struct {
	Slot     BackupSlot
	Problems []error
}

// OK reports whether the slot verified cleanly.
func (v VerifyResult) OK() bool {
	return len(v.Problems) == 0
}

var volumeNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// ValidateVolumeName checks a volume name against the runtime naming rule.
func ValidateVolumeName(name string) error {
	if !volumeNamePattern.MatchString(name) {
		return fmt.Errorf("%w: invalid volume name %q", ErrInvalidArgument, name)
	}
	return nil
}

// VolumeArchiveName returns the archive file name for a volume.
func VolumeArchiveName(volumeName string) string {
	return volumeName + VolumeArchiveExt
}

// BackupConfig holds the engine settings shared by the backup use cases.
type BackupConfig struct {
	Product   string
	ConfigDir string
	Version   string
	Keep      int
	Workers   int

	HelperImage         string
	HelperTimeout       time.Duration
	HelperTimeoutPerGiB time.Duration
}
