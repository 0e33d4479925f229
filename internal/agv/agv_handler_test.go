package agv_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-agv/internal/agv"
	agverrors "go-agv/internal/agv/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAGVService struct {
	RegisterFn func(ctx context.Context, req agv.RegisterAGVRequest) (agv.AGVResponse, error)
	GetAllFn   func(ctx context.Context) ([]agv.AGVResponse, error)
	GetByIDFn  func(ctx context.Context, id uint) (agv.AGVResponse, error)
	UpdateFn   func(ctx context.Context, id uint, req agv.UpdateAGVRequest) (agv.AGVResponse, error)
	DeleteFn   func(ctx context.Context, id uint) error
}

func (f *fakeAGVService) Register(ctx context.Context, req agv.RegisterAGVRequest) (agv.AGVResponse, error) {
	return f.RegisterFn(ctx, req)
}
func (f *fakeAGVService) GetAll(ctx context.Context) ([]agv.AGVResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeAGVService) GetByID(ctx context.Context, id uint) (agv.AGVResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeAGVService) Update(ctx context.Context, id uint, req agv.UpdateAGVRequest) (agv.AGVResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeAGVService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

func setupHandler(svc agv.Service) *agv.Handler {
	return agv.NewHandler(svc, zap.NewNop())
}

func TestAGVHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeAGVService{
			RegisterFn: func(ctx context.Context, req agv.RegisterAGVRequest) (agv.AGVResponse, error) {
				assert.Equal(t, "A001", req.Code)
				return agv.AGVResponse{ID: 5, Name: req.Name, Code: req.Code}, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"AGV-01","code":"A001","model":"MiR-250","warehouse_id":2}`
		req := httptest.NewRequest(http.MethodPost, "/agvs/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "A001")
	})

	t.Run("validation error", func(t *testing.T) {
		h := setupHandler(&fakeAGVService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/agvs/register", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("warehouse tidak valid", func(t *testing.T) {
		svc := &fakeAGVService{
			RegisterFn: func(ctx context.Context, req agv.RegisterAGVRequest) (agv.AGVResponse, error) {
				return agv.AGVResponse{}, agverrors.ErrInvalidWarehouse
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"AGV-01","code":"A001","model":"MiR-250","warehouse_id":99}`
		req := httptest.NewRequest(http.MethodPost, "/agvs/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_WAREHOUSE")
	})
}

func TestAGVHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeAGVService{
			GetByIDFn: func(ctx context.Context, id uint) (agv.AGVResponse, error) {
				assert.Equal(t, uint(5), id)
				return agv.AGVResponse{ID: 5, Name: "AGV-01"}, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/agvs/search/5", nil)
		c.Params = gin.Params{{Key: "id", Value: "5"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "AGV-01")
	})

	t.Run("id bukan angka", func(t *testing.T) {
		h := setupHandler(&fakeAGVService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/agvs/search/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeAGVService{
			GetByIDFn: func(ctx context.Context, id uint) (agv.AGVResponse, error) {
				return agv.AGVResponse{}, agverrors.ErrAGVNotFound
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/agvs/search/99", nil)
		c.Params = gin.Params{{Key: "id", Value: "99"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAGVHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeAGVService{
			DeleteFn: func(ctx context.Context, id uint) error {
				assert.Equal(t, uint(5), id)
				return nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/agvs/del/5", nil)
		c.Params = gin.Params{{Key: "id", Value: "5"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "AGV successfully deleted")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeAGVService{
			DeleteFn: func(ctx context.Context, id uint) error {
				return errors.New("db error")
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/agvs/del/5", nil)
		c.Params = gin.Params{{Key: "id", Value: "5"}}

		h.Delete(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
