package agvlog

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=agvlog_repo.go -destination=mock/agvlog_repo_mock.go -package=mock
type Repository interface {
	FindAllByAGV(ctx context.Context, agvID uint) ([]AGVLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllByAGV(ctx context.Context, agvID uint) ([]AGVLog, error) {
	var logs []AGVLog
	err := r.db.WithContext(ctx).
		Where("agv_id = ?", agvID).
		Order("log_time ASC").
		Find(&logs).Error
	return logs, err
}
