package postgres

import (
	"context"

	"hirehub-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seekerRepo struct {
	db *pgxpool.Pool
}

func NewSeekerRepository(db *pgxpool.Pool) domain.SeekerRepository {
	return &seekerRepo{db: db}
}

// GetByUserID returns domain.ErrNotFound when the user has no seeker profile
func (r *seekerRepo) GetByUserID(ctx context.Context, userID string) (*domain.SeekerProfile, error) {
	query := `
		SELECT p.user_id, u.username, COALESCE(p.skills, ''), COALESCE(p.experience, ''), COALESCE(p.resume_url, '')
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1 AND p.role = 'seeker'`

	var p domain.SeekerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Username, &p.Skills, &p.Experience, &p.ResumeURL,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}
