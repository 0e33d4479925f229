package company

import (
	"net/http"

	"go-agv/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	companies, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("get all companies failed", zap.Error(err))
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Companies retrieved successfully", companies)
}
