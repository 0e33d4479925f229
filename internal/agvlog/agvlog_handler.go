package agvlog

import (
	"net/http"
	"strconv"

	agverrors "go-agv/internal/agv/errors"
	"go-agv/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("agvlog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("agvlog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) ListByAGV(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.AppError(c, agverrors.ErrInvalidAGVID)
		return
	}

	res, err := h.service.ListByAGV(c.Request.Context(), uint(id))
	if err != nil {
		h.logger.Error("list agv logs failed", zap.Uint64("agv_id", id), zap.Error(err))
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "AGV logs retrieved successfully", res)
}
