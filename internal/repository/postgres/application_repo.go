package postgres

import (
	"context"
	"time"

	"hirehub-backend/internal/domain"
	"hirehub-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `
	a.id, a.job_id, a.seeker_user_id, a.resume_url, a.cover_letter, a.status,
	a.skill_match_percentage, a.matching_skills, a.applied_at, a.reviewed_at,
	j.title, u.username`

const applicationFrom = `
	FROM job_applications a
	LEFT JOIN jobs j ON a.job_id = j.id
	LEFT JOIN users u ON a.seeker_user_id = u.id`

// applicantOrder maps a sort choice to a fixed ORDER BY clause
var applicantOrder = map[domain.ApplicantSort]string{
	domain.SortMatchDesc: ` ORDER BY a.skill_match_percentage DESC, a.applied_at DESC`,
	domain.SortMatchAsc:  ` ORDER BY a.skill_match_percentage ASC, a.applied_at DESC`,
	domain.SortRecent:    ` ORDER BY a.applied_at DESC`,
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanApplication reads matching_skills as a plain []string; pgx decodes text[] in binary format
func scanApplication(row rowScanner) (domain.Application, error) {
	var app domain.Application
	var skills []string
	err := row.Scan(
		&app.ID, &app.JobID, &app.SeekerUserID, &app.ResumeURL, &app.CoverLetter, &app.Status,
		&app.SkillMatchPercentage, &skills, &app.AppliedAt, &app.ReviewedAt,
		&app.JobTitle, &app.SeekerName,
	)
	if skills == nil {
		skills = []string{}
	}
	app.MatchingSkills = skills
	return app, err
}

// Create inserts a new application. The (job, seeker) pair is unique.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO job_applications (job_id, seeker_user_id, resume_url, cover_letter, status, skill_match_percentage, matching_skills, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	app.AppliedAt = time.Now()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID,
		app.SeekerUserID,
		app.ResumeURL,
		app.CoverLetter,
		app.Status,
		app.SkillMatchPercentage,
		pq.Array(app.MatchingSkills),
		app.AppliedAt,
	).Scan(&app.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("You have already applied to this job")
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + applicationFrom + ` WHERE a.id = $1`
	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &app, nil
}

// buildApplicantQuery filters by job and optional status; ORDER BY comes from a fixed map only
func buildApplicantQuery(jobID int64, q domain.ApplicantQuery) (string, []any) {
	query := `SELECT ` + applicationColumns + applicationFrom + ` WHERE a.job_id = $1`
	args := []any{jobID}
	if q.Status != "" {
		args = append(args, q.Status)
		query += ` AND a.status = $2`
	}

	order, ok := applicantOrder[q.Sort]
	if !ok {
		order = applicantOrder[domain.SortMatchDesc]
	}
	return query + order, args
}

// GetByJobID lists a job's applicants in the requested order
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64, q domain.ApplicantQuery) ([]domain.Application, error) {
	query, args := buildApplicantQuery(jobID, q)
	return r.list(ctx, query, args...)
}

func (r *applicationRepo) GetBySeekerID(ctx context.Context, userID string) ([]domain.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+applicationFrom+` WHERE a.seeker_user_id = $1 ORDER BY a.applied_at DESC`, userID)
}

func (r *applicationRepo) list(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) CheckExists(ctx context.Context, jobID int64, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_id = $1 AND seeker_user_id = $2)`,
		jobID, userID,
	).Scan(&exists)
	return exists, err
}

// UpdateStatus sets the status; reviewed_at is stamped the first time an application leaves pending.
// The frozen skill match columns are never touched here.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE job_applications
		SET status = $1,
			reviewed_at = COALESCE(reviewed_at, CASE WHEN $1 <> 'pending' THEN NOW() END)
		WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
