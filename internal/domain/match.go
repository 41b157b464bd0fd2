package domain

// MatchLevel buckets a match percentage for display
type MatchLevel string

const (
	MatchLevelStrong MatchLevel = "strong" // 70 and above
	MatchLevelGood   MatchLevel = "good"   // 40 to 69
	MatchLevelLow    MatchLevel = "low"    // below 40
)

// MatchResult is the overlap between a job's required skills and a seeker's skills.
// MatchingSkills is sorted and never nil.
type MatchResult struct {
	Percentage     int        `json:"skill_match"`
	MatchingSkills []string   `json:"matching_skills"`
	Level          MatchLevel `json:"match_level"`
}
