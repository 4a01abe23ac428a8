package skills

import (
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/agentctl/agentctl/pkg/logger"
)

// Registry loads skills from registered manifest sources and holds the
// resulting skill set for the process lifetime. Load order is source
// registration order, then manifest order within a source; the first skill
// claiming a name wins.
type Registry struct {
	sources []Source
	skills  []Skill
	index   map[string]int
}

// NewRegistry creates a registry over the given sources.
func NewRegistry(sources ...Source) *Registry {
	return &Registry{sources: sources, index: make(map[string]int)}
}

// AddSource registers an additional manifest source. Must be called before
// Load.
func (r *Registry) AddSource(s Source) {
	r.sources = append(r.sources, s)
}

// Load reads every source and parses each manifest into a Skill. Failures
// are strictly per-entry: a malformed manifest or an unavailable source is
// logged and skipped, never fatal.
func (r *Registry) Load(ctx context.Context) []Skill {
	log := logger.G(ctx)

	for _, source := range r.sources {
		manifests, err := source.Manifests()
		if err != nil {
			log.WithError(err).WithField("source", source.Name()).Warn("skill source unavailable")
			continue
		}
		for _, manifest := range manifests {
			skill, err := parseManifest(manifest)
			if err != nil {
				log.WithError(err).WithField("manifest", manifest.Path).Debug("skipping malformed skill manifest")
				continue
			}
			if _, exists := r.index[skill.Name]; exists {
				continue
			}
			r.index[skill.Name] = len(r.skills)
			r.skills = append(r.skills, skill)
		}
	}

	log.WithField("count", len(r.skills)).Debug("skills loaded")
	return r.skills
}

// Skills returns the loaded skill set in load order.
func (r *Registry) Skills() []Skill {
	return r.skills
}

// Get returns a skill by name.
func (r *Registry) Get(name string) (Skill, bool) {
	i, ok := r.index[name]
	if !ok {
		return Skill{}, false
	}
	return r.skills[i], true
}

// Len returns the number of loaded skills.
func (r *Registry) Len() int {
	return len(r.skills)
}

// parseManifest extracts the frontmatter block and body from a SKILL.md
// manifest. A missing name falls back to the manifest's directory name;
// missing triggers yield an empty list. Unknown frontmatter fields are
// tolerated and ignored.
func parseManifest(manifest RawManifest) (Skill, error) {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(manifest.Data, &buf, parser.WithContext(pctx)); err != nil {
		return Skill{}, errors.Wrap(err, "failed to parse manifest markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return Skill{}, errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	if name = strings.TrimSpace(name); name == "" {
		name = manifest.FallbackName
	}
	if name == "" {
		return Skill{}, errors.New("skill has no name")
	}

	description, _ := metaData["description"].(string)

	var triggers []string
	if list, ok := metaData["triggers"].([]interface{}); ok {
		for _, item := range list {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					triggers = append(triggers, s)
				}
			}
		}
	}

	return Skill{
		Name:        name,
		Description: strings.TrimSpace(description),
		Triggers:    triggers,
		SourcePath:  manifest.Path,
		Content:     extractBody(string(manifest.Data)),
	}, nil
}

// extractBody strips the leading YAML frontmatter block and returns the body.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return content
	}
	return strings.TrimLeft(strings.Join(lines[end+1:], "\n"), "\n")
}
