package agv

import (
	"net/http"
	"strconv"

	agverrors "go-agv/internal/agv/errors"
	"go-agv/internal/shared/apperror"
	"go-agv/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("agv.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("agv.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterAGVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("register agv failed", zap.Error(err))
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "AGV registered successfully", res)
}

func (h *Handler) GetAll(c *gin.Context) {
	res, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("get all agvs failed", zap.Error(err))
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "AGVs retrieved successfully", res)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "AGV retrieved successfully", res)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAGVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.logger.Error("update agv failed", zap.Uint("agv_id", id), zap.Error(err))
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "AGV updated successfully", res)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete agv failed", zap.Uint("agv_id", id), zap.Error(err))
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "AGV successfully deleted", nil)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.AppError(c, agverrors.ErrInvalidAGVID)
		return 0, false
	}
	return uint(id), true
}
