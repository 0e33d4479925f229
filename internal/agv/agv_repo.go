package agv

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=agv_repo.go -destination=mock/agv_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *AGV) error
	FindAll(ctx context.Context) ([]AGV, error)
	FindByID(ctx context.Context, id uint) (*AGV, error)
	Update(ctx context.Context, a *AGV) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *AGV) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AGV, error) {
	var agvs []AGV
	err := r.db.WithContext(ctx).Order("agv_id ASC").Find(&agvs).Error
	return agvs, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*AGV, error) {
	var a AGV
	err := r.db.WithContext(ctx).First(&a, "agv_id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *AGV) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&AGV{}, "agv_id = ?", id).Error
}
