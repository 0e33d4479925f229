package agvlog

import (
	"context"
	"errors"

	"go-agv/internal/agv"
	agverrors "go-agv/internal/agv/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=agvlog_service.go -destination=mock/agvlog_service_mock.go -package=mock
type Service interface {
	ListByAGV(ctx context.Context, agvID uint) ([]AGVLogResponse, error)
}

type service struct {
	repo    Repository
	agvRepo agv.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, agvRepo agv.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("agvlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("agvlog.service")
	}
	return &service{repo: repo, agvRepo: agvRepo, logger: l}
}

func (s *service) ListByAGV(ctx context.Context, agvID uint) ([]AGVLogResponse, error) {
	if _, err := s.agvRepo.FindByID(ctx, agvID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, agverrors.ErrAGVNotFound
		}
		return nil, err
	}

	logs, err := s.repo.FindAllByAGV(ctx, agvID)
	if err != nil {
		s.logger.Error("find logs by agv failed", zap.Uint("agv_id", agvID), zap.Error(err))
		return nil, err
	}

	resp := make([]AGVLogResponse, len(logs))
	for i, lg := range logs {
		resp[i] = AGVLogResponse{
			ID:          lg.ID,
			LogCode:     lg.LogCode,
			LocationX:   lg.LocationX,
			LocationY:   lg.LocationY,
			Efficiency:  lg.Efficiency,
			State:       lg.State,
			Significant: lg.Significant,
			LogTime:     lg.LogTime,
			AGVID:       lg.AGVID,
		}
	}

	return resp, nil
}
