package benefit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=benefit_repo.go -destination=mock/benefit_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Benefit, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Benefit, error) {
	var benefits []Benefit
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&benefits).Error
	return benefits, err
}
