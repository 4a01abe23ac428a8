package skills

import (
	"sort"
	"strings"
)

// Match scores every skill against the task text by trigger-keyword overlap
// and returns the relevant skills ranked by descending score. Ties preserve
// registry order.
//
// A trigger matches when it appears as a case-insensitive substring anywhere
// in the task text. The score is the total length of all matched triggers
// divided by the task length, so longer and more specific triggers outrank
// short generic ones, and scores stay comparable across tasks of different
// verbosity. Skills with no matched trigger are excluded; a skill with no
// triggers at all can therefore never be returned.
//
// Callers must reject empty task text before matching; Match returns nil for
// an empty task rather than dividing by zero.
func Match(task string, candidates []Skill) []MatchResult {
	if len(task) == 0 {
		return nil
	}
	loweredTask := strings.ToLower(task)

	var results []MatchResult
	for _, skill := range candidates {
		var (
			matched     []string
			seen        = make(map[string]bool)
			totalLength int
		)
		for _, trigger := range skill.Triggers {
			lowered := strings.ToLower(trigger)
			if lowered == "" || seen[lowered] {
				continue
			}
			if strings.Contains(loweredTask, lowered) {
				seen[lowered] = true
				matched = append(matched, trigger)
				totalLength += len(trigger)
			}
		}
		if len(matched) == 0 {
			continue
		}
		results = append(results, MatchResult{
			Skill:           skill,
			MatchedTriggers: matched,
			Score:           float64(totalLength) / float64(len(task)),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
