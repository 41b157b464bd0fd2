package domain

import "context"

// Company is the employer a job is posted under. CreatedBy is the provider who registered it.
type Company struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CreatedBy  string `json:"created_by"`
	IsVerified bool   `json:"is_verified"`
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*Company, error)
}
