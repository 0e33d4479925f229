package user

import (
	"context"
	"errors"

	"go-agv/internal/company"
	usererrors "go-agv/internal/user/errors"
	"go-agv/internal/warehouse"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (UserResponse, error)
	GetByID(ctx context.Context, id uint) (UserResponse, error)
	UpdateProfile(ctx context.Context, id uint, req UpdateUserRequest) (UserResponse, error)
	CheckEmailDuplicate(ctx context.Context, email string) (bool, error)
}

type service struct {
	repo          Repository
	companyRepo   company.Repository
	warehouseRepo warehouse.Repository
	logger        *zap.Logger
}

func NewService(
	repo Repository,
	companyRepo company.Repository,
	warehouseRepo warehouse.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		repo:          repo,
		companyRepo:   companyRepo,
		warehouseRepo: warehouseRepo,
		logger:        l,
	}
}

// Signup memvalidasi request berurutan: email unik dulu, lalu company,
// lalu warehouse, lalu relasi warehouse-company, terakhir warehouse code.
// Urutan ini menentukan error mana yang dilaporkan saat beberapa field
// sekaligus salah.
func (s *service) Signup(ctx context.Context, req SignupRequest) (UserResponse, error) {
	// 1. Cek duplikasi email
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("signup email check failed", zap.Error(err))
		return UserResponse{}, err
	}
	if exists {
		return UserResponse{}, usererrors.ErrDuplicateEmail
	}

	// 2. Cek company
	comp, err := s.companyRepo.FindByID(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrInvalidCompany
		}
		s.logger.Error("signup company lookup failed", zap.Error(err))
		return UserResponse{}, err
	}

	// 3. Cek warehouse
	wh, err := s.warehouseRepo.FindByID(ctx, req.WarehouseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrInvalidWarehouse
		}
		s.logger.Error("signup warehouse lookup failed", zap.Error(err))
		return UserResponse{}, err
	}

	// 4. Warehouse harus milik company yang dipilih
	if wh.CompanyID != comp.ID {
		return UserResponse{}, usererrors.ErrWarehouseCompanyMismatch
	}

	// 5. Warehouse code sebagai shared secret pendaftaran
	if wh.Code != req.WarehouseCode {
		return UserResponse{}, usererrors.ErrInvalidWarehouseCode
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("signup password hashing failed", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		Email:       req.Email,
		Password:    string(hashed),
		Name:        req.UserName,
		PhoneNumber: req.PhoneNumber,
		WarehouseID: req.WarehouseID,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		// Dua signup dengan email sama bisa lolos pre-check bersamaan;
		// unique index yang memutuskan pemenangnya.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return UserResponse{}, usererrors.ErrDuplicateEmail
		}
		s.logger.Error("create user failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("user registered",
		zap.Uint("user_id", u.ID),
		zap.Uint("warehouse_id", u.WarehouseID),
	)
	return mapUserToResponse(*u), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (UserResponse, error) {
	// Ambil user by email
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrInvalidCredentials
		}
		s.logger.Error("login email lookup failed", zap.Error(err))
		return UserResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return UserResponse{}, usererrors.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", zap.Uint("user_id", u.ID))
	return mapUserToResponse(*u), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		s.logger.Error("find user by id failed", zap.Error(err))
		return UserResponse{}, err
	}

	return mapUserToResponse(*u), nil
}

func (s *service) UpdateProfile(ctx context.Context, id uint, req UpdateUserRequest) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	// Perubahan profil apa pun butuh password saat ini
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return UserResponse{}, usererrors.ErrIncorrectPassword
	}

	if req.NewPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("update password hashing failed", zap.Error(err))
			return UserResponse{}, err
		}
		u.Password = string(hashed)
	}
	if req.UserName != "" {
		u.Name = req.UserName
	}
	if req.PhoneNumber != "" {
		u.PhoneNumber = req.PhoneNumber
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user failed", zap.Uint("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("user profile updated", zap.Uint("user_id", id))
	return mapUserToResponse(*u), nil
}

func (s *service) CheckEmailDuplicate(ctx context.Context, email string) (bool, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("check email failed", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func mapUserToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		UserName:    u.Name,
		PhoneNumber: u.PhoneNumber,
		WarehouseID: u.WarehouseID,
	}
}
