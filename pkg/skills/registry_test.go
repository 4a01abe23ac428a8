package skills

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, dir, content string) {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, ManifestFileName), []byte(content), 0o644))
}

func TestRegistryLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("loads well-formed manifests", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeSkill(t, tmpDir, "rate-limiting", `---
name: rate-limiting
description: Design rate limiters
triggers:
  - rate limit
  - durable object
---

# Rate Limiting

Use a token bucket.
`)

		registry := NewRegistry(NewDirSource(tmpDir))
		loaded := registry.Load(ctx)
		require.Len(t, loaded, 1)

		skill, ok := registry.Get("rate-limiting")
		require.True(t, ok)
		assert.Equal(t, "Design rate limiters", skill.Description)
		assert.Equal(t, []string{"rate limit", "durable object"}, skill.Triggers)
		assert.Contains(t, skill.Content, "# Rate Limiting")
		assert.NotContains(t, skill.Content, "triggers:")
		assert.Contains(t, skill.SourcePath, "rate-limiting")
	})

	t.Run("malformed manifest is skipped, loading continues", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeSkill(t, tmpDir, "broken", "no frontmatter here")
		writeSkill(t, tmpDir, "good", `---
name: good
description: A working skill
---

Body.
`)

		registry := NewRegistry(NewDirSource(tmpDir))
		loaded := registry.Load(ctx)
		require.Len(t, loaded, 1)
		assert.Equal(t, "good", loaded[0].Name)
	})

	t.Run("missing name falls back to directory name", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeSkill(t, tmpDir, "dir-named", `---
description: Name comes from the directory
---

Body.
`)

		registry := NewRegistry(NewDirSource(tmpDir))
		registry.Load(ctx)
		_, ok := registry.Get("dir-named")
		assert.True(t, ok)
	})

	t.Run("missing triggers yields empty list", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeSkill(t, tmpDir, "quiet", `---
name: quiet
description: No triggers at all
---

Body.
`)

		registry := NewRegistry(NewDirSource(tmpDir))
		registry.Load(ctx)
		skill, ok := registry.Get("quiet")
		require.True(t, ok)
		assert.Empty(t, skill.Triggers)
	})

	t.Run("quoted scalar values are stripped", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeSkill(t, tmpDir, "quoted", `---
name: "quoted"
description: "Quotes around values"
triggers:
  - "rate limit"
---

Body.
`)

		registry := NewRegistry(NewDirSource(tmpDir))
		registry.Load(ctx)
		skill, ok := registry.Get("quoted")
		require.True(t, ok)
		assert.Equal(t, "Quotes around values", skill.Description)
		assert.Equal(t, []string{"rate limit"}, skill.Triggers)
	})

	t.Run("missing directory yields no skills without error", func(t *testing.T) {
		registry := NewRegistry(NewDirSource(filepath.Join(t.TempDir(), "does-not-exist")))
		assert.Empty(t, registry.Load(ctx))
	})

	t.Run("first loaded name wins across sources", func(t *testing.T) {
		dir1 := t.TempDir()
		dir2 := t.TempDir()
		writeSkill(t, dir1, "dup", "---\nname: dup\ndescription: from dir1\n---\n\nBody.\n")
		writeSkill(t, dir2, "dup", "---\nname: dup\ndescription: from dir2\n---\n\nBody.\n")

		registry := NewRegistry(NewDirSource(dir1), NewDirSource(dir2))
		loaded := registry.Load(ctx)
		require.Len(t, loaded, 1)
		assert.Equal(t, "from dir1", loaded[0].Description)
	})

	t.Run("fs source loads embedded-style manifests", func(t *testing.T) {
		fsys := fstest.MapFS{
			"bundled/SKILL.md": &fstest.MapFile{Data: []byte(`---
name: bundled
description: Shipped with the binary
triggers:
  - bundle
---

Body.
`)},
		}

		registry := NewRegistry(NewFSSource(fsys, ".", "builtin"))
		loaded := registry.Load(ctx)
		require.Len(t, loaded, 1)
		assert.Equal(t, "bundled", loaded[0].Name)
		assert.Contains(t, loaded[0].SourcePath, "builtin:")
	})
}

// Loading a manifest and matching against task text, end to end.
func TestLoadThenMatch(t *testing.T) {
	tmpDir := t.TempDir()
	writeSkill(t, tmpDir, "rate-limiting", `---
name: rate-limiting
description: Design rate limiters
triggers:
  - rate limit
  - durable object
---

Body.
`)

	registry := NewRegistry(NewDirSource(tmpDir))
	loaded := registry.Load(context.Background())

	results := Match("design a rate limiter", loaded)
	require.Len(t, results, 1)
	assert.Equal(t, "rate-limiting", results[0].Skill.Name)
	assert.Equal(t, []string{"rate limit"}, results[0].MatchedTriggers)
}

// An FSSource rooted at "." must produce clean io/fs paths: fs.ReadFile
// rejects "./x" style paths, which would silently drop every manifest.
func TestFSSourceAtRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"bundled/SKILL.md": &fstest.MapFile{Data: []byte("---\nname: bundled\n---\n\nBody.\n")},
	}

	manifests, err := NewFSSource(fsys, ".", "builtin").Manifests()
	require.NoError(t, err)
	require.Len(t, manifests, 1)
	assert.Equal(t, "builtin:bundled/SKILL.md", manifests[0].Path)
	assert.Equal(t, "bundled", manifests[0].FallbackName)
}
