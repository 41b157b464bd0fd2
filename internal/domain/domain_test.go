package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewerRoles(t *testing.T) {
	assert.False(t, Viewer{}.IsAuthenticated())
	assert.False(t, Viewer{Role: RoleSeeker}.IsSeeker(), "role without user id is anonymous")
	assert.True(t, Viewer{UserID: "u", Role: RoleSeeker}.IsSeeker())
	assert.True(t, Viewer{UserID: "u", Role: RoleProvider}.IsProvider())
	assert.True(t, Viewer{UserID: "u", Role: RoleAdmin}.IsProvider())
	assert.False(t, Viewer{UserID: "u", Role: RoleMentor}.IsProvider())
}

func TestParseApplicantSort(t *testing.T) {
	assert.Equal(t, SortMatchDesc, ParseApplicantSort(""))
	assert.Equal(t, SortMatchDesc, ParseApplicantSort("bogus"))
	assert.Equal(t, SortMatchAsc, ParseApplicantSort("-skill_match"))
	assert.Equal(t, SortRecent, ParseApplicantSort("recent"))
}

func TestJobOwnedBy(t *testing.T) {
	owner := "provider-1"
	job := &Job{ProviderID: &owner}

	assert.True(t, job.OwnedBy(Viewer{UserID: owner, Role: RoleProvider}))
	assert.False(t, job.OwnedBy(Viewer{UserID: "provider-2", Role: RoleProvider}))
	assert.False(t, job.OwnedBy(Viewer{UserID: owner, Role: RoleSeeker}), "same id with another role")
	assert.True(t, job.OwnedBy(Viewer{UserID: "admin-1", Role: RoleAdmin}))
	assert.False(t, job.OwnedBy(Viewer{}))
	assert.False(t, (&Job{}).OwnedBy(Viewer{UserID: owner, Role: RoleProvider}), "job without provider")
}

func TestJobListed(t *testing.T) {
	assert.True(t, (&Job{IsActive: true, IsVerified: true}).Listed())
	assert.False(t, (&Job{IsActive: true}).Listed())
	assert.False(t, (&Job{IsVerified: true}).Listed())
}

func TestJobListParamsNormalize(t *testing.T) {
	cases := []struct {
		in       JobListParams
		page     int
		pageSize int
	}{
		{JobListParams{}, 1, DefaultPageSize},
		{JobListParams{Page: -3, PageSize: -1}, 1, DefaultPageSize},
		{JobListParams{Page: 4, PageSize: 20}, 4, 20},
		{JobListParams{Page: 2, PageSize: 1000}, 2, MaxPageSize},
	}
	for _, tc := range cases {
		got := tc.in.Normalize()
		assert.Equal(t, tc.page, got.Page)
		assert.Equal(t, tc.pageSize, got.PageSize)
	}
}
