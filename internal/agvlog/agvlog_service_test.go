package agvlog_test

import (
	"context"
	"testing"
	"time"

	"go-agv/internal/agv"
	agverrors "go-agv/internal/agv/errors"
	agvMock "go-agv/internal/agv/mock"
	"go-agv/internal/agvlog"
	agvlogMock "go-agv/internal/agvlog/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestAGVLogService_ListByAGV(t *testing.T) {
	ctx := context.Background()

	t.Run("success - urutan log_time dipertahankan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := agvlogMock.NewMockRepository(ctrl)
		agvRepo := agvMock.NewMockRepository(ctrl)
		svc := agvlog.NewService(repo, agvRepo, zap.NewNop())

		t0 := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

		agvRepo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(&agv.AGV{ID: 5}, nil)

		repo.EXPECT().
			FindAllByAGV(ctx, uint(5)).
			Return([]agvlog.AGVLog{
				{ID: 1, LogCode: 100, State: "RUNNING", LogTime: t0, AGVID: 5},
				{ID: 2, LogCode: 101, State: "IDLE", LogTime: t0.Add(time.Minute), AGVID: 5},
			}, nil)

		resp, err := svc.ListByAGV(ctx, 5)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "RUNNING", resp[0].State)
		assert.True(t, resp[0].LogTime.Before(resp[1].LogTime))
	})

	t.Run("agv tidak dikenal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := agvlogMock.NewMockRepository(ctrl)
		agvRepo := agvMock.NewMockRepository(ctrl)
		svc := agvlog.NewService(repo, agvRepo, zap.NewNop())

		agvRepo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.ListByAGV(ctx, 99)

		assert.ErrorIs(t, err, agverrors.ErrAGVNotFound)
	})

	t.Run("agv tanpa log - list kosong", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := agvlogMock.NewMockRepository(ctrl)
		agvRepo := agvMock.NewMockRepository(ctrl)
		svc := agvlog.NewService(repo, agvRepo, zap.NewNop())

		agvRepo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(&agv.AGV{ID: 5}, nil)
		repo.EXPECT().
			FindAllByAGV(ctx, uint(5)).
			Return([]agvlog.AGVLog{}, nil)

		resp, err := svc.ListByAGV(ctx, 5)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}
