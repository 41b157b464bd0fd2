package usecase

import (
	"context"
	"errors"
	"strings"

	"hirehub-backend/internal/domain"
	"hirehub-backend/internal/skillmatch"
	"hirehub-backend/pkg/apperror"
	"hirehub-backend/pkg/logger"
)

// Statuses a provider may set. pending is only ever the initial state.
var reviewStatuses = map[string]bool{
	domain.ApplicationStatusReviewed:    true,
	domain.ApplicationStatusShortlisted: true,
	domain.ApplicationStatusRejected:    true,
	domain.ApplicationStatusHired:       true,
}

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	seekerRepo      domain.SeekerRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	seekerRepo domain.SeekerRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		seekerRepo:      seekerRepo,
	}
}

// ApplyToJob submits an application and freezes the current skill match on it
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, viewer domain.Viewer, jobID int64, in domain.ApplyInput) (*domain.Application, error) {
	// 1. Only seekers apply
	if !viewer.IsSeeker() {
		return nil, apperror.Forbidden("Only job seekers can apply to jobs")
	}

	// 2. Job must exist and be listed
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.Listed() {
		return nil, apperror.BadRequest("Cannot apply to inactive job")
	}

	// 3. Seeker profile supplies skills and the default resume
	profile, err := uc.seekerRepo.GetByUserID(ctx, viewer.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden("Complete your profile before applying")
		}
		return nil, apperror.Internal(err)
	}

	resumeURL := strings.TrimSpace(in.ResumeURL)
	if resumeURL == "" {
		resumeURL = profile.ResumeURL
	}
	if resumeURL == "" {
		return nil, apperror.BadRequest("A resume is required to submit an application")
	}

	// 4. One application per job
	exists, err := uc.applicationRepo.CheckExists(ctx, jobID, viewer.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	// 5. Freeze the match; later profile or job edits do not change it
	match := skillmatch.ComputeMatch(job.SkillsRequired, profile.Skills)

	var coverLetter *string
	if cl := strings.TrimSpace(in.CoverLetter); cl != "" {
		coverLetter = &cl
	}

	app := &domain.Application{
		JobID:                jobID,
		SeekerUserID:         viewer.UserID,
		ResumeURL:            resumeURL,
		CoverLetter:          coverLetter,
		Status:               domain.ApplicationStatusPending,
		SkillMatchPercentage: match.Percentage,
		MatchingSkills:       match.MatchingSkills,
		JobTitle:             &job.Title,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("Application submitted",
		"application_id", app.ID,
		"job_id", jobID,
		"skill_match", match.Percentage,
	)
	return app, nil
}

// GetMyApplications returns all applications for the current seeker
func (uc *applicationUsecase) GetMyApplications(ctx context.Context, viewer domain.Viewer) ([]domain.Application, error) {
	if !viewer.IsSeeker() {
		return nil, apperror.Forbidden("Only job seekers have applications")
	}
	apps, err := uc.applicationRepo.GetBySeekerID(ctx, viewer.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// GetApplication returns one application to its applicant or to the job's provider
func (uc *applicationUsecase) GetApplication(ctx context.Context, viewer domain.Viewer, id int64) (*domain.Application, error) {
	if !viewer.IsAuthenticated() {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	if viewer.IsSeeker() {
		// Other seekers' applications look missing, not forbidden
		if app.SeekerUserID != viewer.UserID {
			return nil, apperror.NotFound("Application not found")
		}
		return app, nil
	}

	if err := uc.validateJobOwnership(ctx, viewer, app.JobID); err != nil {
		return nil, err
	}
	return app, nil
}

// ListApplicants returns a job's applicants ordered by their frozen match or recency
func (uc *applicationUsecase) ListApplicants(ctx context.Context, viewer domain.Viewer, jobID int64, q domain.ApplicantQuery) ([]domain.Application, error) {
	if q.Status != "" && !domain.IsApplicationStatus(q.Status) {
		return nil, apperror.BadRequest("Invalid status filter")
	}
	if err := uc.validateJobOwnership(ctx, viewer, jobID); err != nil {
		return nil, err
	}

	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID, q)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application to a review status
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, viewer domain.Viewer, applicationID int64, status string) error {
	if !reviewStatuses[status] {
		return apperror.BadRequest("Invalid status. Must be: reviewed, shortlisted, rejected, or hired")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	if err := uc.validateJobOwnership(ctx, viewer, app.JobID); err != nil {
		return err
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// validateJobOwnership allows the provider who posted the job, or an admin
func (uc *applicationUsecase) validateJobOwnership(ctx context.Context, viewer domain.Viewer, jobID int64) error {
	if !viewer.IsProvider() {
		return apperror.Forbidden("Only job providers can review applications")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if !job.OwnedBy(viewer) {
		return apperror.Forbidden("You can only review applications for your own jobs")
	}
	return nil
}
