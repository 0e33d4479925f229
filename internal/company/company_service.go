package company

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	companyerrors "go-agv/internal/company/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Daftar company adalah data master kecil dan publik; layak di-cache lama.
const companiesCacheKey = "companies:all"

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id uint) (*CompanyResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, companiesCacheKey).Result(); err == nil {
			var resp []CompanyResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight agar cache refill tidak menumpuk ke database
	v, err, _ := s.sf.Do(companiesCacheKey, func() (interface{}, error) {
		companies, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("find all companies failed", zap.Error(err))
			return nil, err
		}

		resp := make([]CompanyResponse, len(companies))
		for i, c := range companies {
			resp[i] = mapToResponse(c)
		}

		// 3. Simpan ke Redis
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, companiesCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]CompanyResponse), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*CompanyResponse, error) {
	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	resp := mapToResponse(*comp)
	return &resp, nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}
