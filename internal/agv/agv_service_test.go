package agv_test

import (
	"context"
	"errors"
	"testing"

	"go-agv/internal/agv"
	agverrors "go-agv/internal/agv/errors"
	agvMock "go-agv/internal/agv/mock"
	"go-agv/internal/warehouse"
	warehouseMock "go-agv/internal/warehouse/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service       agv.Service
	repo          *agvMock.MockRepository
	warehouseRepo *warehouseMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := agvMock.NewMockRepository(ctrl)
	warehouseRepo := warehouseMock.NewMockRepository(ctrl)
	svc := agv.NewService(repo, warehouseRepo, zap.NewNop())

	return &serviceDeps{service: svc, repo: repo, warehouseRepo: warehouseRepo}
}

func TestAGVService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := agv.RegisterAGVRequest{
			Name:        "AGV-01",
			Code:        "A001",
			Model:       "MiR-250",
			WarehouseID: 2,
		}

		deps.warehouseRepo.EXPECT().
			FindByID(ctx, uint(2)).
			Return(&warehouse.Warehouse{ID: 2, CompanyID: 1}, nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *agv.AGV) error {
				assert.Equal(t, req.Name, a.Name)
				assert.Equal(t, req.WarehouseID, a.WarehouseID)
				a.ID = 5
				return nil
			})

		resp, err := deps.service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(5), resp.ID)
		assert.Equal(t, "AGV-01", resp.Name)
	})

	t.Run("warehouse tidak dikenal", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.warehouseRepo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Register(ctx, agv.RegisterAGVRequest{
			Name:        "AGV-01",
			Code:        "A001",
			WarehouseID: 99,
		})

		assert.ErrorIs(t, err, agverrors.ErrInvalidWarehouse)
	})
}

func TestAGVService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(&agv.AGV{ID: 5, Name: "AGV-01", WarehouseID: 2}, nil)

		resp, err := deps.service.GetByID(ctx, 5)

		assert.NoError(t, err)
		assert.Equal(t, "AGV-01", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, 99)

		assert.ErrorIs(t, err, agverrors.ErrAGVNotFound)
	})
}

func TestAGVService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update - hanya nama", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(&agv.AGV{ID: 5, Name: "AGV-01", Code: "A001", WarehouseID: 2}, nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *agv.AGV) error {
				assert.Equal(t, "AGV-01B", a.Name)
				// Field lain tidak berubah
				assert.Equal(t, "A001", a.Code)
				assert.Equal(t, uint(2), a.WarehouseID)
				return nil
			})

		resp, err := deps.service.Update(ctx, 5, agv.UpdateAGVRequest{Name: "AGV-01B"})

		assert.NoError(t, err)
		assert.Equal(t, "AGV-01B", resp.Name)
	})

	t.Run("pindah warehouse - tujuan divalidasi", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(&agv.AGV{ID: 5, WarehouseID: 2}, nil)

		deps.warehouseRepo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 5, agv.UpdateAGVRequest{WarehouseID: 99})

		assert.ErrorIs(t, err, agverrors.ErrInvalidWarehouse)
	})

	t.Run("agv tidak ditemukan", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 99, agv.UpdateAGVRequest{Name: "X"})

		assert.ErrorIs(t, err, agverrors.ErrAGVNotFound)
	})
}

func TestAGVService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(&agv.AGV{ID: 5}, nil)
		deps.repo.EXPECT().
			Delete(ctx, uint(5)).
			Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, 5))
	})

	t.Run("delete id tidak dikenal - not found, bukan sukses kosong", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, 99)

		assert.ErrorIs(t, err, agverrors.ErrAGVNotFound)
	})

	t.Run("error repository", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(&agv.AGV{ID: 5}, nil)
		deps.repo.EXPECT().
			Delete(ctx, uint(5)).
			Return(errors.New("db error"))

		assert.Error(t, deps.service.Delete(ctx, 5))
	})
}
