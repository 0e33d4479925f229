package warehouse

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=warehouse_service.go -destination=mock/warehouse_service_mock.go -package=mock
type Service interface {
	ListByCompany(ctx context.Context, companyID uint) ([]WarehouseResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("warehouse.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("warehouse.service")
	}
	return &service{repo: repo, logger: l}
}

// ListByCompany adalah lookup publik untuk form signup. Company id yang tidak
// dikenal menghasilkan list kosong, bukan error.
func (s *service) ListByCompany(ctx context.Context, companyID uint) ([]WarehouseResponse, error) {
	warehouses, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("find warehouses by company failed",
			zap.Uint("company_id", companyID),
			zap.Error(err),
		)
		return nil, err
	}

	resp := make([]WarehouseResponse, len(warehouses))
	for i, w := range warehouses {
		resp[i] = WarehouseResponse{
			ID:   w.ID,
			Name: w.Name,
		}
	}

	return resp, nil
}
