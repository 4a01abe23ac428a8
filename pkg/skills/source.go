package skills

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// RawManifest is an unparsed skill manifest produced by a Source. FallbackName
// is used when the frontmatter does not carry a name, and Path identifies the
// manifest for diagnostics.
type RawManifest struct {
	FallbackName string
	Path         string
	Data         []byte
}

// Source yields skill manifests from some storage mechanism. Registering
// sources instead of hard-wiring a directory walk keeps the matcher decoupled
// from where manifests live: filesystem directories, embedded bundles, or
// anything else that can enumerate manifests.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Manifests returns every manifest the source can see. A source-level
	// error means the whole source is unavailable; per-manifest problems are
	// handled downstream by the registry.
	Manifests() ([]RawManifest, error)
}

// DirSource reads one SKILL.md per immediate subdirectory of a root
// directory.
type DirSource struct {
	root string
}

// NewDirSource creates a source over the given skills directory.
func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

// Name returns the root directory path.
func (s *DirSource) Name() string { return s.root }

// Manifests scans the immediate subdirectories of the root. A missing or
// unreadable root yields no manifests rather than an error so that optional
// skill directories can be registered unconditionally.
func (s *DirSource) Manifests() ([]RawManifest, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, nil
	}

	var manifests []RawManifest
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(s.root, entry.Name(), ManifestFileName)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		manifests = append(manifests, RawManifest{
			FallbackName: entry.Name(),
			Path:         path,
			Data:         data,
		})
	}
	return manifests, nil
}

// FSSource reads skill manifests from an fs.FS, one SKILL.md per immediate
// subdirectory of dir. Used for the builtin skills compiled into the binary.
type FSSource struct {
	fsys fs.FS
	dir  string
	name string
}

// NewFSSource creates a source over the given filesystem subtree.
func NewFSSource(fsys fs.FS, dir, name string) *FSSource {
	return &FSSource{fsys: fsys, dir: dir, name: name}
}

// Name identifies the source in logs.
func (s *FSSource) Name() string { return s.name }

// Manifests enumerates SKILL.md files under the source directory.
func (s *FSSource) Manifests() ([]RawManifest, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read embedded skills dir %s", s.dir)
	}

	var manifests []RawManifest
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		// path.Join also cleans the leading "./" when dir is ".", which
		// io/fs paths must not carry.
		manifestPath := path.Join(s.dir, entry.Name(), ManifestFileName)
		data, err := fs.ReadFile(s.fsys, manifestPath)
		if err != nil {
			continue
		}
		manifests = append(manifests, RawManifest{
			FallbackName: entry.Name(),
			Path:         s.name + ":" + manifestPath,
			Data:         data,
		})
	}
	return manifests, nil
}
