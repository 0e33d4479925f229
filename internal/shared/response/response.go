package response

import (
	"go-agv/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// Envelope adalah bentuk response tunggal untuk semua endpoint.
// Status HTTP selalu konsisten dengan field Success.
type Envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    any        `json:"data"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail dipakai untuk hasil negatif yang bukan error (contoh: "Not logged in",
// email sudah terdaftar pada check-email). Tidak membawa error code.
func Fail(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Data:    nil,
		Error:   &ErrorBody{Code: code, Details: details},
	})
}

// AppError menerjemahkan error dari service layer ke envelope.
func AppError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}
