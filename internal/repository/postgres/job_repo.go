package postgres

import (
	"context"
	"fmt"
	"strings"

	"hirehub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `
	j.id, j.company_id, j.provider_id, j.title, j.description, j.location, j.salary,
	j.job_type, j.skills_required, COALESCE(j.experience_required, ''),
	j.is_active, j.is_verified, j.created_at, j.updated_at`

func scanJob(row pgx.Row, job *domain.Job, extra ...any) error {
	dest := []any{
		&job.ID, &job.CompanyID, &job.ProviderID, &job.Title, &job.Description, &job.Location, &job.Salary,
		&job.JobType, &job.SkillsRequired, &job.ExperienceRequired,
		&job.IsActive, &job.IsVerified, &job.CreatedAt, &job.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job); err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

// GetByIDWithCompany retrieves a job with company details
func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `
		SELECT ` + jobColumns + `,
			COALESCE(c.name, 'Unknown Company'), COALESCE(c.is_verified, false)
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.id = $1`

	var job domain.JobWithCompany
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job.Job, &job.CompanyName, &job.CompanyVerified); err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

// likeEscaper makes a user keyword match literally inside an ILIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// buildListedWhere hardcodes the active+verified filter; callers only narrow it
func buildListedWhere(filter domain.JobFilter) (string, []any) {
	conds := []string{"j.is_active = true", "j.is_verified = true"}
	var args []any

	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, containsPattern(q))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(j.title ILIKE $%[1]d ESCAPE '\' OR j.description ILIKE $%[1]d ESCAPE '\' OR j.skills_required ILIKE $%[1]d ESCAPE '\' OR c.name ILIKE $%[1]d ESCAPE '\')`, n))
	}
	if filter.JobType != "" {
		args = append(args, filter.JobType)
		conds = append(conds, fmt.Sprintf("j.job_type = $%d", len(args)))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// FetchListed returns one page of publicly listed jobs, newest first, and the total match count
func (r *jobRepo) FetchListed(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithCompany, int64, error) {
	where, args := buildListedWhere(filter)
	from := ` FROM jobs j LEFT JOIN companies c ON j.company_id = c.id`

	query := `SELECT ` + jobColumns + `, COALESCE(c.name, 'Unknown Company'), COALESCE(c.is_verified, false)` +
		from + where +
		fmt.Sprintf(` ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]domain.JobWithCompany, 0, filter.Limit)
	for rows.Next() {
		var job domain.JobWithCompany
		if err := scanJob(rows, &job.Job, &job.CompanyName, &job.CompanyVerified); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+from+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// FetchByProvider lists every job a provider posted, listed or not, newest first
func (r *jobRepo) FetchByProvider(ctx context.Context, providerID string) ([]domain.JobWithCompany, error) {
	query := `SELECT ` + jobColumns + `, COALESCE(c.name, 'Unknown Company'), COALESCE(c.is_verified, false)
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.provider_id = $1
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobWithCompany{}
	for rows.Next() {
		var job domain.JobWithCompany
		if err := scanJob(rows, &job.Job, &job.CompanyName, &job.CompanyVerified); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (company_id, provider_id, title, description, location, salary, job_type,
			skills_required, experience_required, is_active, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.CompanyID, job.ProviderID, job.Title, job.Description, job.Location, job.Salary, job.JobType,
		job.SkillsRequired, job.ExperienceRequired, job.IsActive, job.IsVerified, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

// Update rewrites the posting and withdraws verification until an admin checks it again
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs SET
			company_id = $2,
			title = $3,
			description = $4,
			location = $5,
			salary = $6,
			job_type = $7,
			skills_required = $8,
			experience_required = $9,
			is_verified = false,
			updated_at = $10
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		job.ID, job.CompanyID, job.Title, job.Description, job.Location, job.Salary, job.JobType,
		job.SkillsRequired, job.ExperienceRequired, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	job.IsVerified = false
	return nil
}

// Deactivate takes the job off the board. Applications and their frozen matches are kept.
func (r *jobRepo) Deactivate(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE jobs SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
