// Package builtin bundles a small set of skills into the binary so that a
// fresh install can route tasks before the user has written any skills of
// their own. Workspace and user skill directories take precedence.
package builtin

import (
	"embed"

	"github.com/agentctl/agentctl/pkg/skills"
)

//go:embed */SKILL.md
var fsys embed.FS

// Source returns a skill source over the embedded manifests.
func Source() skills.Source {
	return skills.NewFSSource(fsys, ".", "builtin")
}
