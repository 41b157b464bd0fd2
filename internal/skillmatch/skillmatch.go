// Package skillmatch scores how much of a job's required skill list a seeker covers.
//
// Skill text is free-form and comma-separated. Tokens are compared after trimming
// and lower-casing only, so "Python " equals "python" but "Python3" does not equal
// "Python 3". The score is directional: extra seeker skills never raise or lower it.
package skillmatch

import (
	"sort"
	"strings"

	"hirehub-backend/internal/domain"
)

// SkillSet is a normalized set of skill tokens.
type SkillSet map[string]struct{}

// ParseSkills splits comma-separated text into a SkillSet. Blank tokens are dropped,
// so empty or whitespace-only text yields an empty set.
func ParseSkills(text string) SkillSet {
	set := make(SkillSet)
	for _, part := range strings.Split(text, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

func (s SkillSet) Len() int { return len(s) }

func (s SkillSet) Contains(skill string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// Intersect returns the tokens present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(SkillSet, len(small))
	for token := range small {
		if _, ok := large[token]; ok {
			out[token] = struct{}{}
		}
	}
	return out
}

// Sorted returns the tokens in lexical order. Never nil.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for token := range s {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// ComputeMatch scores candidateSkillsText against requiredSkillsText.
// A job with no required skills, or a candidate with no skills, scores 0.
func ComputeMatch(requiredSkillsText, candidateSkillsText string) domain.MatchResult {
	required := ParseSkills(requiredSkillsText)
	candidate := ParseSkills(candidateSkillsText)

	if required.Len() == 0 || candidate.Len() == 0 {
		return domain.MatchResult{MatchingSkills: []string{}, Level: Level(0)}
	}

	common := required.Intersect(candidate)
	pct := Percentage(common.Len(), required.Len())

	return domain.MatchResult{
		Percentage:     pct,
		MatchingSkills: common.Sorted(),
		Level:          Level(pct),
	}
}

// Percentage returns 100*part/whole rounded half to even, computed exactly
// in integers (12.5 -> 12, 37.5 -> 38, 66.67 -> 67). whole <= 0 yields 0.
func Percentage(part, whole int) int {
	if whole <= 0 || part <= 0 {
		return 0
	}
	if part > whole {
		part = whole
	}
	num := 100 * part
	q, r := num/whole, num%whole
	switch {
	case 2*r > whole:
		q++
	case 2*r == whole && q%2 == 1:
		q++
	}
	return q
}

// Level buckets a percentage: 70+ strong, 40-69 good, below 40 low.
func Level(percentage int) domain.MatchLevel {
	switch {
	case percentage >= 70:
		return domain.MatchLevelStrong
	case percentage >= 40:
		return domain.MatchLevelGood
	default:
		return domain.MatchLevelLow
	}
}
