package warehouseerrors

import (
	"go-agv/internal/shared/apperror"
	"net/http"
)

var ErrWarehouseNotFound = apperror.New(
	apperror.CodeNotFound,
	"Warehouse not found",
	http.StatusNotFound,
)
