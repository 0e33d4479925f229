package companyerrors

import (
	"go-agv/internal/shared/apperror"
	"net/http"
)

var ErrCompanyNotFound = apperror.New(
	apperror.CodeNotFound,
	"Company not found",
	http.StatusNotFound,
)
