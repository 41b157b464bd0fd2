package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job type codes
const (
	JobTypeFullTime   = "FT"
	JobTypePartTime   = "PT"
	JobTypeInternship = "IN"
	JobTypeContract   = "CT"
)

var JobTypeLabels = map[string]string{
	JobTypeFullTime:   "Full Time",
	JobTypePartTime:   "Part Time",
	JobTypeInternship: "Internship",
	JobTypeContract:   "Contract",
}

type Job struct {
	ID                 int64     `json:"id"`
	CompanyID          int64     `json:"company_id"`
	ProviderID         *string   `json:"provider_id,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	Salary             string    `json:"salary"`
	JobType            string    `json:"job_type"`
	SkillsRequired     string    `json:"skills_required"` // comma-separated free text
	ExperienceRequired string    `json:"experience_required"`
	IsActive           bool      `json:"is_active"`
	IsVerified         bool      `json:"is_verified"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Listed reports whether the job is visible on the public board
func (j *Job) Listed() bool {
	return j.IsActive && j.IsVerified
}

// JobWithCompany extends Job with company profile information
type JobWithCompany struct {
	Job
	CompanyName     string `json:"company_name"`
	CompanyVerified bool   `json:"company_verified"`
}

// JobWithMatch is a listing entry; Match is nil unless the viewer is a seeker
type JobWithMatch struct {
	JobWithCompany
	Match *MatchResult `json:"match,omitempty"`
}

// JobFilter selects listed jobs
type JobFilter struct {
	Query   string
	JobType string
	Limit   int
	Offset  int
}

// Listing page bounds
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// JobListParams is the listing request as received from the transport layer
type JobListParams struct {
	Page        int
	PageSize    int
	Query       string
	JobType     string
	SortByMatch bool
}

// JobInput is a provider's job posting as submitted
type JobInput struct {
	CompanyID          int64
	Title              string
	Description        string
	Location           string
	Salary             string
	JobType            string
	SkillsRequired     string
	ExperienceRequired string
}

// OwnedBy reports whether the viewer posted the job. Admins own every job.
func (j *Job) OwnedBy(viewer Viewer) bool {
	if !viewer.IsAuthenticated() {
		return false
	}
	if viewer.Role == RoleAdmin {
		return true
	}
	return viewer.Role == RoleProvider && j.ProviderID != nil && *j.ProviderID == viewer.UserID
}

type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	FetchListed(ctx context.Context, filter JobFilter) ([]JobWithCompany, int64, error)
	FetchByProvider(ctx context.Context, providerID string) ([]JobWithCompany, error)
	Create(ctx context.Context, job *Job) error
	Update(ctx context.Context, job *Job) error
	Deactivate(ctx context.Context, id int64) error
}

type JobUsecase interface {
	ListJobs(ctx context.Context, viewer Viewer, params JobListParams) ([]JobWithMatch, int64, error)
	GetJobDetails(ctx context.Context, viewer Viewer, id int64) (*JobWithMatch, error)
	GetJobMatch(ctx context.Context, viewer Viewer, id int64) (*MatchResult, error)

	// Provider operations
	ListMyJobs(ctx context.Context, viewer Viewer) ([]JobWithCompany, error)
	CreateJob(ctx context.Context, viewer Viewer, in JobInput) (*Job, error)
	UpdateJob(ctx context.Context, viewer Viewer, id int64, in JobInput) (*Job, error)
	DeactivateJob(ctx context.Context, viewer Viewer, id int64) error
}

// Normalize clamps paging to valid bounds
func (p JobListParams) Normalize() JobListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}
