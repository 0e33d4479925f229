package company_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-agv/internal/company"
	companyerrors "go-agv/internal/company/errors"
	companyMock "go-agv/internal/company/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const companiesCacheKey = "companies:all"

func TestCompanyService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("hit cache - database tidak disentuh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := companyMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := company.NewService(repo, rdb, zap.NewNop())

		cached, _ := json.Marshal([]company.CompanyResponse{
			{ID: 1, Name: "PT Maju"},
		})
		redisMock.ExpectGet(companiesCacheKey).SetVal(string(cached))

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "PT Maju", resp[0].Name)
	})

	t.Run("miss cache - ambil dari database lalu simpan ke redis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := companyMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := company.NewService(repo, rdb, zap.NewNop())

		redisMock.ExpectGet(companiesCacheKey).RedisNil()

		repo.EXPECT().
			FindAll(ctx).
			Return([]company.Company{
				{ID: 1, Name: "PT Maju"},
				{ID: 2, Name: "PT Mundur"},
			}, nil).
			Times(1)

		expected, _ := json.Marshal([]company.CompanyResponse{
			{ID: 1, Name: "PT Maju"},
			{ID: 2, Name: "PT Mundur"},
		})
		redisMock.ExpectSet(companiesCacheKey, expected, 1*time.Hour).SetVal("OK")

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "PT Mundur", resp[1].Name)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := companyMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := company.NewService(repo, rdb, zap.NewNop())

		redisMock.ExpectGet(companiesCacheKey).RedisNil()
		repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("database connection lost"))

		resp, err := svc.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestCompanyService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := companyMock.NewMockRepository(ctrl)
		svc := company.NewService(repo, nil, zap.NewNop())

		repo.EXPECT().
			FindByID(ctx, uint(1)).
			Return(&company.Company{ID: 1, Name: "PT Maju"}, nil)

		resp, err := svc.GetByID(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "PT Maju", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := companyMock.NewMockRepository(ctrl)
		svc := company.NewService(repo, nil, zap.NewNop())

		repo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, 99)

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}
