// Package skills implements declarative capability modules. A skill is a
// directory containing a SKILL.md manifest whose YAML frontmatter names the
// skill, describes it, and lists the trigger keywords that make it relevant
// to a task. Skills are loaded once at startup and matched against task text
// by trigger-keyword scoring.
package skills

// ManifestFileName is the fixed manifest file name inside a skill directory.
const ManifestFileName = "SKILL.md"

// Skill is a loaded capability module. Immutable after load.
type Skill struct {
	Name        string   // unique key, from frontmatter or the directory name
	Description string   // one-line summary for the capability menu
	Triggers    []string // case-insensitive match keys; empty means never keyword-matched
	SourcePath  string   // manifest location, for diagnostics
	Content     string   // manifest body with frontmatter stripped
}

// MatchResult pairs a skill with the triggers found in a task and the
// resulting relevance score.
type MatchResult struct {
	Skill           Skill
	MatchedTriggers []string
	Score           float64
}
