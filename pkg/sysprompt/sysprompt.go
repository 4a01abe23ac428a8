// Package sysprompt assembles system prompts from mode persona templates and
// the skill capability menu.
package sysprompt

import (
	"github.com/agentctl/agentctl/pkg/llm"
	"github.com/agentctl/agentctl/pkg/skills"
)

// SkillEntry is one line of the capability menu rendered into the prompt.
type SkillEntry struct {
	Name        string
	Description string
}

var defaultRenderer = NewRenderer()

// SystemPrompt renders the persona for the given mode followed by the
// capability menu for the selected skills.
func SystemPrompt(mode llm.Mode, selected []skills.MatchResult) (string, error) {
	persona, err := defaultRenderer.Render(mode.String(), nil)
	if err != nil {
		return "", err
	}
	if len(selected) == 0 {
		return persona, nil
	}

	entries := make([]SkillEntry, 0, len(selected))
	for _, match := range selected {
		entries = append(entries, SkillEntry{
			Name:        match.Skill.Name,
			Description: match.Skill.Description,
		})
	}
	menu, err := defaultRenderer.Render("skills_menu", entries)
	if err != nil {
		return "", err
	}
	return persona + "\n\n" + menu, nil
}

// UIPrompt renders the fixed persona used for UI-flavored tasks. It carries
// no capability menu; the UI path bypasses skill selection entirely.
func UIPrompt() (string, error) {
	return defaultRenderer.Render("ui", nil)
}
