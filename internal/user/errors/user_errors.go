package usererrors

import (
	"go-agv/internal/shared/apperror"
	"net/http"
)

var (
	ErrDuplicateEmail = apperror.New(
		"DUPLICATE_EMAIL",
		"Email already exists",
		http.StatusConflict,
	)

	ErrInvalidCompany = apperror.New(
		"INVALID_COMPANY",
		"Invalid company",
		http.StatusBadRequest,
	)

	ErrInvalidWarehouse = apperror.New(
		"INVALID_WAREHOUSE",
		"Invalid warehouse",
		http.StatusBadRequest,
	)

	ErrWarehouseCompanyMismatch = apperror.New(
		"WAREHOUSE_COMPANY_MISMATCH",
		"Warehouse does not belong to the selected company",
		http.StatusBadRequest,
	)

	ErrInvalidWarehouseCode = apperror.New(
		"INVALID_WAREHOUSE_CODE",
		"Invalid warehouse code",
		http.StatusBadRequest,
	)

	// Email dan password salah dilaporkan dengan pesan yang sama agar
	// endpoint login tidak bisa dipakai menebak email terdaftar.
	ErrInvalidCredentials = apperror.New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrIncorrectPassword = apperror.New(
		"INCORRECT_PASSWORD",
		"Current password is incorrect",
		http.StatusBadRequest,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
)
