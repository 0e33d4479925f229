package agverrors

import (
	"go-agv/internal/shared/apperror"
	"net/http"
)

var (
	ErrAGVNotFound = apperror.New(
		apperror.CodeNotFound,
		"AGV not found",
		http.StatusNotFound,
	)

	ErrInvalidAGVID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid AGV ID",
		http.StatusBadRequest,
	)

	ErrInvalidWarehouse = apperror.New(
		"INVALID_WAREHOUSE",
		"Invalid warehouse",
		http.StatusBadRequest,
	)
)
