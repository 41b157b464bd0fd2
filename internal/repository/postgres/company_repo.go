package postgres

import (
	"context"

	"hirehub-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_by, is_verified FROM companies WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.CreatedBy, &c.IsVerified)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}
