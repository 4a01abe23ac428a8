package agent

import "strings"

// uiKeywords is the fixed vocabulary that routes a task to the UI persona.
// Matching is a case-insensitive substring test, the same style as skill
// trigger matching. Deliberately omits very short tokens ("ui") that would
// match inside unrelated words.
var uiKeywords = []string{
	"button",
	"component",
	"frontend",
	"front-end",
	"css",
	"stylesheet",
	"styling",
	"layout",
	"modal",
	"navbar",
	"widget",
	"responsive",
	"user interface",
	"web page",
	"landing page",
	"dark mode",
}

// isUITask reports whether the task text contains any UI keyword.
func isUITask(task string) bool {
	lowered := strings.ToLower(task)
	for _, keyword := range uiKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
