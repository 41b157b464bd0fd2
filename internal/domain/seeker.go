package domain

import "context"

// SeekerProfile holds the job seeker fields the matcher needs
type SeekerProfile struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Skills     string `json:"skills"` // comma-separated free text
	Experience string `json:"experience"`
	ResumeURL  string `json:"resume_url"`
}

type SeekerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*SeekerProfile, error)
}
