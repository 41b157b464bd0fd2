package postgres

import (
	"testing"

	"hirehub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildListedWhere(t *testing.T) {
	t.Run("no filters keeps listing guard", func(t *testing.T) {
		where, args := buildListedWhere(domain.JobFilter{})
		assert.Equal(t, " WHERE j.is_active = true AND j.is_verified = true", where)
		assert.Empty(t, args)
	})

	t.Run("query and job type", func(t *testing.T) {
		where, args := buildListedWhere(domain.JobFilter{Query: "  golang ", JobType: "FT"})
		assert.Contains(t, where, "j.title ILIKE $1")
		assert.Contains(t, where, "c.name ILIKE $1")
		assert.Contains(t, where, "j.job_type = $2")
		assert.Equal(t, []any{"%golang%", "FT"}, args)
	})

	t.Run("wildcards in the keyword match literally", func(t *testing.T) {
		where, args := buildListedWhere(domain.JobFilter{Query: `100%_off\x`})
		assert.Contains(t, where, `j.title ILIKE $1 ESCAPE '\'`)
		assert.Contains(t, where, `c.name ILIKE $1 ESCAPE '\'`)
		assert.Equal(t, []any{`%100\%\_off\\x%`}, args)
	})

	t.Run("job type alone is $1", func(t *testing.T) {
		where, args := buildListedWhere(domain.JobFilter{JobType: "IN"})
		assert.Contains(t, where, "j.job_type = $1")
		assert.Equal(t, []any{"IN"}, args)
	})
}

func TestApplicantOrderCoversEverySort(t *testing.T) {
	for _, s := range []domain.ApplicantSort{domain.SortMatchDesc, domain.SortMatchAsc, domain.SortRecent} {
		assert.Contains(t, applicantOrder, s)
	}
	assert.Contains(t, applicantOrder[domain.SortMatchAsc], "skill_match_percentage ASC")
}

func TestBuildApplicantQuery(t *testing.T) {
	query, args := buildApplicantQuery(7, domain.ApplicantQuery{})
	assert.Equal(t, []any{int64(7)}, args)
	assert.NotContains(t, query, "a.status =")
	assert.Contains(t, query, "skill_match_percentage DESC")

	query, args = buildApplicantQuery(7, domain.ApplicantQuery{Sort: domain.SortRecent, Status: "hired"})
	assert.Equal(t, []any{int64(7), "hired"}, args)
	assert.Contains(t, query, "a.status = $2")
	assert.Contains(t, query, "ORDER BY a.applied_at DESC")

	query, _ = buildApplicantQuery(7, domain.ApplicantQuery{Sort: "x; DROP TABLE jobs"})
	assert.NotContains(t, query, "DROP")
}
