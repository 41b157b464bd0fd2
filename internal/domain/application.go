package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

// ApplicantSort orders an employer's applicant list
type ApplicantSort string

const (
	SortMatchDesc ApplicantSort = "skill_match"
	SortMatchAsc  ApplicantSort = "-skill_match"
	SortRecent    ApplicantSort = "recent"
)

// ApplicantQuery selects and orders a job's applicants; empty Status means all
type ApplicantQuery struct {
	Sort   ApplicantSort
	Status string
}

// IsApplicationStatus reports whether s is a known status
func IsApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

// ParseApplicantSort falls back to SortMatchDesc for unknown values
func ParseApplicantSort(s string) ApplicantSort {
	switch ApplicantSort(s) {
	case SortMatchAsc, SortRecent:
		return ApplicantSort(s)
	default:
		return SortMatchDesc
	}
}

// Application is a seeker's application to a job.
// SkillMatchPercentage and MatchingSkills are captured at submission and never recomputed.
type Application struct {
	ID                   int64      `json:"id"`
	JobID                int64      `json:"job_id"`
	SeekerUserID         string     `json:"seeker_user_id"`
	ResumeURL            string     `json:"resume_url"`
	CoverLetter          *string    `json:"cover_letter,omitempty"`
	Status               string     `json:"status"`
	SkillMatchPercentage int        `json:"skill_match_percentage"`
	MatchingSkills       []string   `json:"matching_skills"`
	AppliedAt            time.Time  `json:"applied_at"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`

	// Joined data for list responses
	JobTitle   *string `json:"job_title,omitempty"`
	SeekerName *string `json:"seeker_name,omitempty"`
}

type ApplyInput struct {
	ResumeURL   string
	CoverLetter string
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64, q ApplicantQuery) ([]Application, error)
	GetBySeekerID(ctx context.Context, userID string) ([]Application, error)
	CheckExists(ctx context.Context, jobID int64, userID string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	// Seeker operations
	ApplyToJob(ctx context.Context, viewer Viewer, jobID int64, in ApplyInput) (*Application, error)
	GetMyApplications(ctx context.Context, viewer Viewer) ([]Application, error)
	// GetApplication is visible to the applicant and to the job's provider
	GetApplication(ctx context.Context, viewer Viewer, id int64) (*Application, error)

	// Provider operations
	ListApplicants(ctx context.Context, viewer Viewer, jobID int64, q ApplicantQuery) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, viewer Viewer, applicationID int64, status string) error
}
