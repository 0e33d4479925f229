package user

type SignupRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	UserName      string `json:"user_name" binding:"required"`
	PhoneNumber   string `json:"phone_number"`
	CompanyID     uint   `json:"company_id" binding:"required"`
	WarehouseID   uint   `json:"warehouse_id" binding:"required"`
	WarehouseCode string `json:"warehouse_code" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Partial update: field yang kosong tidak diubah.
// CurrentPassword selalu wajib sebagai re-autentikasi.
type UpdateUserRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password"`
	UserName        string `json:"user_name"`
	PhoneNumber     string `json:"phone_number"`
}

type UserResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	UserName    string `json:"user_name"`
	PhoneNumber string `json:"phone_number"`
	WarehouseID uint   `json:"warehouse_id"`
}
