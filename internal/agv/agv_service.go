package agv

import (
	"context"
	"errors"

	agverrors "go-agv/internal/agv/errors"
	"go-agv/internal/warehouse"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=agv_service.go -destination=mock/agv_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterAGVRequest) (AGVResponse, error)
	GetAll(ctx context.Context) ([]AGVResponse, error)
	GetByID(ctx context.Context, id uint) (AGVResponse, error)
	Update(ctx context.Context, id uint, req UpdateAGVRequest) (AGVResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo          Repository
	warehouseRepo warehouse.Repository
	logger        *zap.Logger
}

func NewService(repo Repository, warehouseRepo warehouse.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("agv.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("agv.service")
	}
	return &service{
		repo:          repo,
		warehouseRepo: warehouseRepo,
		logger:        l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterAGVRequest) (AGVResponse, error) {
	// Pastikan warehouse tujuan exist
	if _, err := s.warehouseRepo.FindByID(ctx, req.WarehouseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AGVResponse{}, agverrors.ErrInvalidWarehouse
		}
		s.logger.Error("register agv warehouse lookup failed", zap.Error(err))
		return AGVResponse{}, err
	}

	a := &AGV{
		Name:        req.Name,
		Code:        req.Code,
		Model:       req.Model,
		Footnote:    req.Footnote,
		WarehouseID: req.WarehouseID,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("create agv failed", zap.Error(err))
		return AGVResponse{}, err
	}

	s.logger.Info("agv registered",
		zap.Uint("agv_id", a.ID),
		zap.Uint("warehouse_id", a.WarehouseID),
	)
	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context) ([]AGVResponse, error) {
	agvs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("find all agvs failed", zap.Error(err))
		return nil, err
	}

	resp := make([]AGVResponse, len(agvs))
	for i, a := range agvs {
		resp[i] = mapToResponse(a)
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (AGVResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AGVResponse{}, agverrors.ErrAGVNotFound
		}
		s.logger.Error("find agv by id failed", zap.Error(err))
		return AGVResponse{}, err
	}

	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateAGVRequest) (AGVResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AGVResponse{}, agverrors.ErrAGVNotFound
		}
		return AGVResponse{}, err
	}

	if req.Name != "" {
		a.Name = req.Name
	}
	if req.Code != "" {
		a.Code = req.Code
	}
	if req.Model != "" {
		a.Model = req.Model
	}
	if req.Footnote != nil {
		a.Footnote = req.Footnote
	}
	if req.WarehouseID != 0 && req.WarehouseID != a.WarehouseID {
		if _, err := s.warehouseRepo.FindByID(ctx, req.WarehouseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return AGVResponse{}, agverrors.ErrInvalidWarehouse
			}
			return AGVResponse{}, err
		}
		a.WarehouseID = req.WarehouseID
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("update agv failed", zap.Uint("agv_id", id), zap.Error(err))
		return AGVResponse{}, err
	}

	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	// First agar delete id yang tidak ada menghasilkan AGV_NOT_FOUND,
	// bukan sukses kosong.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return agverrors.ErrAGVNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete agv failed", zap.Uint("agv_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("agv deleted", zap.Uint("agv_id", id))
	return nil
}

func mapToResponse(a AGV) AGVResponse {
	return AGVResponse{
		ID:          a.ID,
		Name:        a.Name,
		Code:        a.Code,
		Model:       a.Model,
		Footnote:    a.Footnote,
		WarehouseID: a.WarehouseID,
	}
}
