package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

// maxSlotSuffix bounds the search for a free slot name within one second.
const maxSlotSuffix = 1000

// MetadataStore implements slot allocation and manifest persistence on the
// local filesystem.
type MetadataStore struct {
	rootDir  string
	product  string
	slotName *regexp.Regexp
	log      zerowrap.Logger
}

// NewMetadataStore creates the backup root if needed.
func NewMetadataStore(rootDir, product string, log zerowrap.Logger) (*MetadataStore, error) {
	rootDir = expandTilde(rootDir)
	if strings.TrimSpace(rootDir) == "" {
		return nil, fmt.Errorf("%w: backup root is empty", domain.ErrInvalidArgument)
	}
	if product == "" || sanitizeBackupPathComponent(product) != product {
		return nil, fmt.Errorf("%w: product name %q is not path-safe", domain.ErrInvalidArgument, product)
	}

	if err := os.MkdirAll(rootDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve backup directory: %w", err)
	}

	log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "filesystem").
		Str("root_dir", abs).
		Msg("metadata store initialized")

	return &MetadataStore{
		rootDir:  abs,
		product:  product,
		slotName: regexp.MustCompile(`^(` + regexp.QuoteMeta(product) + `_backup_\d{8}_\d{6})(?:_(\d+))?$`),
		log:      log,
	}, nil
}

// Root returns the absolute backup root.
func (s *MetadataStore) Root() string {
	return s.rootDir
}

// SlotName returns the base slot name for a timestamp.
func (s *MetadataStore) SlotName(at time.Time) string {
	return fmt.Sprintf("%s_backup_%s", s.product, at.Format(domain.SlotTimeLayout))
}

// Allocate reserves a fresh slot directory using exclusive mkdir.
func (s *MetadataStore) Allocate(ctx context.Context, at time.Time) (domain.BackupSlot, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "filesystem",
		zerowrap.FieldAction:  "Allocate",
	})
	log := zerowrap.FromCtx(ctx)

	base := s.SlotName(at)
	for i := 1; i <= maxSlotSuffix; i++ {
		name := base
		if i > 1 {
			name = fmt.Sprintf("%s_%d", base, i)
		}
		path := filepath.Join(s.rootDir, name)

		err := os.Mkdir(path, 0750)
		if err == nil {
			log.Debug().Str(zerowrap.FieldEntityID, name).Msg("slot allocated")
			return domain.BackupSlot{Name: name, Path: path}, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return domain.BackupSlot{}, fmt.Errorf("%w: failed to create slot %s: %w", domain.ErrIOFailure, name, err)
		}
	}

	return domain.BackupSlot{}, fmt.Errorf("%w: no free slot name for %s", domain.ErrIOFailure, base)
}

// Write stores the manifest atomically. It is the last step of a backup.
func (s *MetadataStore) Write(ctx context.Context, slotPath string, manifest domain.Manifest) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "filesystem",
		zerowrap.FieldAction:  "WriteManifest",
		zerowrap.FieldPath:    slotPath,
	})
	log := zerowrap.FromCtx(ctx)

	if !pathWithinRoot(s.rootDir, slotPath) {
		return fmt.Errorf("%w: slot path escapes backup root", domain.ErrInvalidArgument)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return log.WrapErr(err, "failed to encode manifest")
	}
	data = append(data, '\n')

	finalPath := filepath.Join(slotPath, domain.ManifestFileName)
	tmpPath := filepath.Join(slotPath, "."+domain.ManifestFileName+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("%w: failed to create temp manifest: %w", domain.ErrIOFailure, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write manifest: %w", domain.ErrIOFailure, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to sync manifest: %w", domain.ErrIOFailure, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to close temp manifest: %w", domain.ErrIOFailure, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to finalize manifest: %w", domain.ErrIOFailure, err)
	}

	log.Debug().Msg("manifest written")
	return nil
}

// Read loads a slot manifest. A missing or unreadable manifest means the
// slot does not exist.
func (s *MetadataStore) Read(_ context.Context, slotPath string) (*domain.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(slotPath, domain.ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrBackupNotFound, filepath.Base(slotPath), err)
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %s: unreadable manifest: %w", domain.ErrBackupNotFound, filepath.Base(slotPath), err)
	}
	return &manifest, nil
}

// Enumerate returns every complete slot, newest first. Ties on created_at
// are broken by slot timestamp, then by collision suffix numerically, so
// _10 sorts above _9.
func (s *MetadataStore) Enumerate(ctx context.Context) ([]domain.BackupSlot, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "filesystem",
		zerowrap.FieldAction:  "Enumerate",
	})
	log := zerowrap.FromCtx(ctx)

	entries, err := os.ReadDir(s.rootDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.BackupSlot{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read backup root: %w", domain.ErrIOFailure, err)
	}

	slots := make([]domain.BackupSlot, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(s.rootDir, entry.Name())
		manifest, err := s.Read(ctx, path)
		if err != nil {
			log.Debug().Str(zerowrap.FieldEntityID, entry.Name()).Err(err).Msg("skipping incomplete slot")
			continue
		}
		slots = append(slots, domain.BackupSlot{Name: entry.Name(), Path: path, Manifest: *manifest})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].Manifest.CreatedAt.Equal(slots[j].Manifest.CreatedAt) {
			return slots[i].Manifest.CreatedAt.After(slots[j].Manifest.CreatedAt)
		}
		baseI, seqI := s.slotSequence(slots[i].Name)
		baseJ, seqJ := s.slotSequence(slots[j].Name)
		if baseI != baseJ {
			return baseI > baseJ
		}
		if seqI != seqJ {
			return seqI > seqJ
		}
		return slots[i].Name > slots[j].Name
	})

	return slots, nil
}

// slotSequence splits a slot name into its timestamped base and collision
// sequence. An unsuffixed name is sequence 1; Allocate starts suffixes at _2.
func (s *MetadataStore) slotSequence(name string) (string, int) {
	m := s.slotName.FindStringSubmatch(name)
	if m == nil {
		return name, 1
	}
	if m[2] == "" {
		return m[1], 1
	}
	seq, err := strconv.Atoi(m[2])
	if err != nil {
		return name, 1
	}
	return m[1], seq
}

// Orphans lists slot-named directories that have no manifest.
func (s *MetadataStore) Orphans(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.rootDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read backup root: %w", domain.ErrIOFailure, err)
	}

	orphans := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsDir() || !s.slotName.MatchString(entry.Name()) {
			continue
		}
		path := filepath.Join(s.rootDir, entry.Name())
		if _, err := os.Lstat(filepath.Join(path, domain.ManifestFileName)); errors.Is(err, fs.ErrNotExist) {
			orphans = append(orphans, path)
		}
	}
	sort.Strings(orphans)
	return orphans, nil
}

// Delete removes a slot directory and everything in it.
func (s *MetadataStore) Delete(ctx context.Context, slotPath string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "filesystem",
		zerowrap.FieldAction:  "Delete",
		zerowrap.FieldPath:    slotPath,
	})
	log := zerowrap.FromCtx(ctx)

	clean := filepath.Clean(slotPath)
	if clean == s.rootDir || filepath.Dir(clean) != s.rootDir {
		return fmt.Errorf("%w: %s is not a slot under %s", domain.ErrInvalidArgument, slotPath, s.rootDir)
	}

	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf("%w: failed to remove %s: %w", domain.ErrIOFailure, filepath.Base(clean), err)
	}

	log.Info().Str(zerowrap.FieldEntityID, filepath.Base(clean)).Msg("slot removed")
	return nil
}

// Resolve maps a slot name or path to a slot directory directly under the
// backup root.
func (s *MetadataStore) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty backup reference", domain.ErrInvalidArgument)
	}

	var path string
	if strings.ContainsRune(ref, filepath.Separator) {
		abs, err := filepath.Abs(expandTilde(ref))
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", domain.ErrInvalidArgument, ref, err)
		}
		path = abs
	} else {
		path = filepath.Join(s.rootDir, ref)
	}

	if filepath.Dir(filepath.Clean(path)) != s.rootDir || !pathWithinRoot(s.rootDir, path) {
		return "", fmt.Errorf("%w: %s is not a slot under %s", domain.ErrInvalidArgument, ref, s.rootDir)
	}
	name := filepath.Base(path)
	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %s is not a slot name", domain.ErrInvalidArgument, ref)
	}
	return path, nil
}

// expandTilde replaces a leading "~/" with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path[2:])
	}
	return path
}

func sanitizeBackupPathComponent(input string) string {
	clean := strings.TrimSpace(input)
	if strings.Trim(clean, ".") == "" {
		return "unknown"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")
	return replacer.Replace(clean)
}

func pathWithinRoot(root, path string) bool {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	pathAbs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(filepath.Clean(rootAbs), filepath.Clean(pathAbs))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
