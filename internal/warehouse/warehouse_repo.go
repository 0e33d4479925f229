package warehouse

import (
	"context"

	"go-agv/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=warehouse_repo.go -destination=mock/warehouse_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id uint) (*Warehouse, error)
	FindAllByCompany(ctx context.Context, companyID uint) ([]Warehouse, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Warehouse, error) {
	var wh Warehouse
	err := r.db.WithContext(ctx).First(&wh, "warehouse_id = ?", id).Error
	return &wh, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID uint) ([]Warehouse, error) {
	var warehouses []Warehouse
	err := r.db.WithContext(ctx).
		Scopes(tenant.CompanyScope(companyID)).
		Order("warehouse_id ASC").
		Find(&warehouses).Error
	return warehouses, err
}
