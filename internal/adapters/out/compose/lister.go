// Package compose discovers the appliance volumes from its composition file.
package compose

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bnema/zerowrap"
	"gopkg.in/yaml.v3"

	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

var projectNameInvalid = regexp.MustCompile(`[^a-z0-9_-]+`)

type composeFile struct {
	Name    string                    `yaml:"name"`
	Volumes map[string]*volumeSection `yaml:"volumes"`
}

type volumeSection struct {
	Name     string `yaml:"name"`
	External any    `yaml:"external"`
}

// external accepts both `external: true` and the legacy `external: {name: x}`.
func (v *volumeSection) external() (bool, string) {
	if v == nil {
		return false, ""
	}
	switch ext := v.External.(type) {
	case bool:
		return ext, ""
	case map[string]any:
		name, _ := ext["name"].(string)
		return true, name
	default:
		return false, ""
	}
}

// Lister resolves the runtime volume names declared in a compose file.
type Lister struct {
	path    string
	project string
}

// NewLister creates a compose volume lister. An empty project falls back to
// the file's `name:` key, then to its directory name.
func NewLister(path, project string) *Lister {
	return &Lister{path: path, project: project}
}

// ListVolumes parses the compose file on every call.
func (l *Lister) ListVolumes(ctx context.Context) ([]domain.VolumeRecord, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "compose",
		zerowrap.FieldAction:  "ListVolumes",
		zerowrap.FieldPath:    l.path,
	})
	log := zerowrap.FromCtx(ctx)

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, log.WrapErr(err, "failed to read compose file")
	}

	var file composeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, log.WrapErr(err, "failed to parse compose file")
	}

	project := l.project
	if project == "" {
		project = file.Name
	}
	if project == "" {
		project = filepath.Base(filepath.Dir(l.path))
	}
	project = normalizeProjectName(project)

	keys := make([]string, 0, len(file.Volumes))
	for key := range file.Volumes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([]domain.VolumeRecord, 0, len(keys))
	for _, key := range keys {
		name := resolveVolumeName(project, key, file.Volumes[key])
		records = append(records, domain.VolumeRecord{Name: name})
	}

	log.Debug().Int(zerowrap.FieldCount, len(records)).Str("project", project).Msg("volumes discovered")
	return records, nil
}

func resolveVolumeName(project, key string, section *volumeSection) string {
	isExternal, externalName := section.external()
	switch {
	case section != nil && section.Name != "":
		return section.Name
	case isExternal && externalName != "":
		return externalName
	case isExternal:
		return key
	default:
		return fmt.Sprintf("%s_%s", project, key)
	}
}

// normalizeProjectName applies the compose rules: lowercase, only
// [a-z0-9_-], leading separators dropped.
func normalizeProjectName(name string) string {
	name = projectNameInvalid.ReplaceAllString(strings.ToLower(name), "")
	return strings.TrimLeft(name, "_-")
}

// StaticLister returns a fixed list of volume names.
type StaticLister struct {
	names []string
}

// NewStaticLister creates a lister over explicit volume names.
func NewStaticLister(names []string) *StaticLister {
	clean := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		clean = append(clean, name)
	}
	return &StaticLister{names: clean}
}

// ListVolumes returns the configured names.
func (s *StaticLister) ListVolumes(_ context.Context) ([]domain.VolumeRecord, error) {
	records := make([]domain.VolumeRecord, 0, len(s.names))
	for _, name := range s.names {
		records = append(records, domain.VolumeRecord{Name: name})
	}
	return records, nil
}
