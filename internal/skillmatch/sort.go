package skillmatch

import (
	"sort"

	"hirehub-backend/internal/domain"
)

// SortByMatch orders jobs by match percentage, highest first. Jobs without match
// data count as 0. Ties keep their incoming order.
func SortByMatch(jobs []domain.JobWithMatch) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return matchOf(jobs[i]) > matchOf(jobs[j])
	})
}

func matchOf(j domain.JobWithMatch) int {
	if j.Match == nil {
		return 0
	}
	return j.Match.Percentage
}
