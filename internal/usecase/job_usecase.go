package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hirehub-backend/internal/domain"
	"hirehub-backend/internal/skillmatch"
	"hirehub-backend/pkg/apperror"

	"golang.org/x/sync/errgroup"
)

// sort=match ranks across this many newest listed jobs before paginating
const matchSortWindow = 500

type jobUsecase struct {
	jobRepo     domain.JobRepository
	seekerRepo  domain.SeekerRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, seekerRepo domain.SeekerRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		seekerRepo:  seekerRepo,
		companyRepo: companyRepo,
	}
}

// seekerProfile loads the viewer's profile when the viewer is a seeker.
// A seeker without a profile row is treated as having no skills.
func (u *jobUsecase) seekerProfile(ctx context.Context, viewer domain.Viewer) (*domain.SeekerProfile, error) {
	if !viewer.IsSeeker() {
		return nil, nil
	}
	profile, err := u.seekerRepo.GetByUserID(ctx, viewer.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.SeekerProfile{UserID: viewer.UserID}, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func attachMatch(job domain.JobWithCompany, profile *domain.SeekerProfile) domain.JobWithMatch {
	out := domain.JobWithMatch{JobWithCompany: job}
	if profile != nil {
		m := skillmatch.ComputeMatch(job.SkillsRequired, profile.Skills)
		out.Match = &m
	}
	return out
}

// ListJobs returns listed jobs. Seekers get match data on every entry and may rank by it.
func (u *jobUsecase) ListJobs(ctx context.Context, viewer domain.Viewer, params domain.JobListParams) ([]domain.JobWithMatch, int64, error) {
	if params.JobType != "" {
		if _, ok := domain.JobTypeLabels[params.JobType]; !ok {
			return nil, 0, apperror.BadRequest("Invalid job_type. Must be one of: FT, PT, IN, CT")
		}
	}

	params = params.Normalize()
	page, pageSize := params.Page, params.PageSize
	rankByMatch := params.SortByMatch && viewer.IsSeeker()

	filter := domain.JobFilter{
		Query:   params.Query,
		JobType: params.JobType,
		Limit:   pageSize,
		Offset:  (page - 1) * pageSize,
	}
	if rankByMatch {
		filter.Limit, filter.Offset = matchSortWindow, 0
	}

	var (
		jobs    []domain.JobWithCompany
		total   int64
		profile *domain.SeekerProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, total, err = u.jobRepo.FetchListed(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = u.seekerProfile(gctx, viewer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	out := make([]domain.JobWithMatch, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, attachMatch(job, profile))
	}

	if rankByMatch {
		skillmatch.SortByMatch(out)
		start := (page - 1) * pageSize
		if start > len(out) {
			start = len(out)
		}
		end := start + pageSize
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}

	return out, total, nil
}

// GetJobDetails returns a listed job, with match data for seekers.
// Unlisted jobs are visible only to their provider and to admins.
func (u *jobUsecase) GetJobDetails(ctx context.Context, viewer domain.Viewer, id int64) (*domain.JobWithMatch, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.Listed() && !job.OwnedBy(viewer) {
		return nil, apperror.NotFound("Job not found")
	}

	profile, err := u.seekerProfile(ctx, viewer)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	out := attachMatch(*job, profile)
	return &out, nil
}

// GetJobMatch computes the seeker's current match against a job
func (u *jobUsecase) GetJobMatch(ctx context.Context, viewer domain.Viewer, id int64) (*domain.MatchResult, error) {
	if !viewer.IsSeeker() {
		return nil, apperror.Forbidden("Only job seekers have a skill match")
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.Listed() {
		return nil, apperror.NotFound("Job not found")
	}

	profile, err := u.seekerProfile(ctx, viewer)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	m := skillmatch.ComputeMatch(job.SkillsRequired, profile.Skills)
	return &m, nil
}

// ListMyJobs returns every job the provider posted, including unverified and deactivated ones
func (u *jobUsecase) ListMyJobs(ctx context.Context, viewer domain.Viewer) ([]domain.JobWithCompany, error) {
	if !viewer.IsProvider() {
		return nil, apperror.Forbidden("Only job providers have posted jobs")
	}
	jobs, err := u.jobRepo.FetchByProvider(ctx, viewer.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// CreateJob posts a job under one of the provider's companies. New jobs wait for admin verification.
func (u *jobUsecase) CreateJob(ctx context.Context, viewer domain.Viewer, in domain.JobInput) (*domain.Job, error) {
	if !viewer.IsProvider() {
		return nil, apperror.Forbidden("Only job providers can post jobs")
	}
	in, err := u.checkJobInput(ctx, viewer, in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	providerID := viewer.UserID
	job := &domain.Job{
		ProviderID: &providerID,
		IsActive:   true,
		IsVerified: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyJobInput(job, in)

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// UpdateJob rewrites the provider's own posting. The edit withdraws verification.
func (u *jobUsecase) UpdateJob(ctx context.Context, viewer domain.Viewer, id int64, in domain.JobInput) (*domain.Job, error) {
	job, err := u.ownedJob(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	in, err = u.checkJobInput(ctx, viewer, in)
	if err != nil {
		return nil, err
	}

	applyJobInput(job, in)
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// DeactivateJob removes the provider's job from the board. Existing applications stay reviewable.
func (u *jobUsecase) DeactivateJob(ctx context.Context, viewer domain.Viewer, id int64) error {
	if _, err := u.ownedJob(ctx, viewer, id); err != nil {
		return err
	}
	if err := u.jobRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) ownedJob(ctx context.Context, viewer domain.Viewer, id int64) (*domain.Job, error) {
	if !viewer.IsProvider() {
		return nil, apperror.Forbidden("Only job providers can manage jobs")
	}
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.OwnedBy(viewer) {
		return nil, apperror.Forbidden("You can only manage your own jobs")
	}
	return job, nil
}

// checkJobInput trims the posting and verifies the company belongs to the provider
func (u *jobUsecase) checkJobInput(ctx context.Context, viewer domain.Viewer, in domain.JobInput) (domain.JobInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.Salary = strings.TrimSpace(in.Salary)
	in.JobType = strings.ToUpper(strings.TrimSpace(in.JobType))
	in.SkillsRequired = strings.TrimSpace(in.SkillsRequired)
	in.ExperienceRequired = strings.TrimSpace(in.ExperienceRequired)

	if _, ok := domain.JobTypeLabels[in.JobType]; !ok {
		return in, apperror.BadRequest("Invalid job_type. Must be one of: FT, PT, IN, CT")
	}
	if skillmatch.ParseSkills(in.SkillsRequired).Len() == 0 {
		return in, apperror.BadRequest("List at least one required skill, separated by commas")
	}

	company, err := u.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return in, apperror.NotFound("Company not found")
		}
		return in, apperror.Internal(err)
	}
	if viewer.Role != domain.RoleAdmin && company.CreatedBy != viewer.UserID {
		return in, apperror.Forbidden("You can only post jobs for companies you registered")
	}
	return in, nil
}

func applyJobInput(job *domain.Job, in domain.JobInput) {
	job.CompanyID = in.CompanyID
	job.Title = in.Title
	job.Description = in.Description
	job.Location = in.Location
	job.Salary = in.Salary
	job.JobType = in.JobType
	job.SkillsRequired = in.SkillsRequired
	job.ExperienceRequired = in.ExperienceRequired
}
