package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id uint) (*Company, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).Order("company_id ASC").Find(&companies).Error
	return companies, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Company, error) {
	var comp Company
	err := r.db.WithContext(ctx).First(&comp, "company_id = ?", id).Error
	return &comp, err
}
