package user

import (
	"errors"
	"net/http"
	"strconv"

	"go-agv/internal/bootstrap"
	"go-agv/internal/middleware"
	"go-agv/internal/session"
	"go-agv/internal/shared/apperror"
	"go-agv/internal/shared/response"
	usererrors "go-agv/internal/user/errors"
	"go-agv/internal/warehouse"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CookieConfig mengatur atribut cookie session yang dikirim ke browser.
// Secure hanya dinyalakan di production karena dev berjalan di plain HTTP.
type CookieConfig struct {
	Secure bool
	MaxAge int
}

type Handler struct {
	service    Service
	warehouses warehouse.Service
	sessions   session.Manager
	audit      bootstrap.AuditLogger
	cookies    CookieConfig
	logger     *zap.Logger
}

func NewHandler(
	service Service,
	warehouses warehouse.Service,
	sessions session.Manager,
	audit bootstrap.AuditLogger,
	cookies CookieConfig,
	logger ...*zap.Logger,
) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{
		service:    service,
		warehouses: warehouses,
		sessions:   sessions,
		audit:      audit,
		cookies:    cookies,
		logger:     l,
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("signup rejected", zap.String("email", req.Email), zap.Error(err))
		response.AppError(c, err)
		return
	}

	// Signup TIDAK membuat session; user harus login setelah daftar.
	response.Success(c, http.StatusCreated, "Signup successful", res)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), res.ID)
	if err != nil {
		h.logger.Error("create session failed", zap.Uint("user_id", res.ID), zap.Error(err))
		response.AppError(c, err)
		return
	}

	h.setSessionCookie(c, token, h.cookies.MaxAge)

	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "LOGIN",
		Message: "User logged in",
		Meta: map[string]any{
			"user_id": res.ID,
		},
	})

	response.Success(c, http.StatusOK, "Login successful", res)
}

// Logout idempotent: tanpa cookie atau dengan token basi tetap 200.
func (h *Handler) Logout(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			h.logger.Error("destroy session failed", zap.Error(err))
			response.AppError(c, err)
			return
		}
	}

	// Hapus cookie di sisi client
	h.setSessionCookie(c, "", -1)

	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "LOGOUT",
		Message: "User logged out",
		Meta: map[string]any{
			"user_id": c.GetUint(middleware.UserIDKey),
		},
	})

	response.Success(c, http.StatusOK, "Logout successful", nil)
}

// Current melakukan resolusi session sendiri (soft), tidak lewat gate:
// setelah logout endpoint ini harus menjawab "Not logged in" dengan 200,
// bukan 401. User yang hilang dari store (dihapus setelah login)
// diperlakukan sama.
func (h *Handler) Current(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		response.Fail(c, http.StatusOK, "Not logged in", nil)
		return
	}

	sess, err := h.sessions.Get(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			response.Fail(c, http.StatusOK, "Not logged in", nil)
			return
		}
		response.AppError(c, err)
		return
	}

	// Sliding expiration, sama seperti gate
	if err := h.sessions.Refresh(c.Request.Context(), token); err != nil {
		h.logger.Warn("session refresh failed", zap.Error(err))
	}

	res, err := h.service.GetByID(c.Request.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			response.Fail(c, http.StatusOK, "Not logged in", nil)
			return
		}
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Current user retrieved", res)
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetUint(middleware.UserIDKey)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Warn("update profile failed", zap.Uint("user_id", userID), zap.Error(err))
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", res)
}

// GetWarehousesByCompany adalah lookup publik untuk form signup.
func (h *Handler) GetWarehousesByCompany(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 32)
	if err != nil {
		response.AppError(c, apperror.InvalidField("company id"))
		return
	}

	res, err := h.warehouses.ListByCompany(c.Request.Context(), uint(companyID))
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Warehouses retrieved successfully", res)
}

// CheckEmail dipakai form signup untuk feedback real-time sebelum submit.
func (h *Handler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.AppError(c, apperror.RequiredField("email"))
		return
	}

	exists, err := h.service.CheckEmailDuplicate(c.Request.Context(), email)
	if err != nil {
		response.AppError(c, err)
		return
	}

	if exists {
		response.Fail(c, http.StatusOK, "Email already exists", true)
		return
	}
	response.Success(c, http.StatusOK, "Email is available", false)
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
