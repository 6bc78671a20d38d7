package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/auth"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

// RegisterRequest creates a new account. Vendor accounts start in pending
// status and need admin approval before they can sell.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`

	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
	BusinessWebsite     string `json:"business_website"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User   *models.User    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// UpdateProfileRequest edits the caller's own profile.
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`

	BusinessName        *string `json:"business_name"`
	BusinessDescription *string `json:"business_description"`
	BusinessWebsite     *string `json:"business_website"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// UserService handles registration, login and profile management.
type UserService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewUserService(users repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Register creates an account with a bcrypt-hashed password. Duplicate emails
// are rejected before insert; the unique index backs that up.
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*models.User, *ServiceError) {
	role := req.Role
	switch role {
	case "", models.RoleCustomer:
		role = models.RoleCustomer
	case models.RoleVendor:
	default:
		return nil, errBadRequest("Role must be customer or vendor")
	}

	if existing, err := s.users.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, errConflict("An account with this email already exists")
	} else if err != nil && !isNotFound(err) {
		s.logger.Error("email lookup failed", zap.Error(err))
		return nil, errInternal("Failed to create account")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return nil, errInternal("Failed to create account")
	}

	status := models.UserStatusActive
	if role == models.RoleVendor {
		status = models.UserStatusPending
	}

	user := &models.User{
		Name:                req.Name,
		Email:               req.Email,
		Password:            string(hashed),
		Role:                role,
		Status:              status,
		BusinessName:        req.BusinessName,
		BusinessDescription: req.BusinessDescription,
		BusinessWebsite:     req.BusinessWebsite,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("user create failed", zap.Error(err))
		return nil, errInternal("Failed to create account")
	}

	s.logger.Info("user registered",
		zap.String("user", user.ID.String()),
		zap.String("role", user.Role),
	)
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
// Suspended and rejected accounts cannot log in.
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, *ServiceError) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 401, Message: "Invalid email or password"}
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return nil, errInternal("Failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid email or password"}
	}

	switch user.Status {
	case models.UserStatusSuspended:
		return nil, errForbidden("Account is suspended")
	case models.UserStatusRejected:
		return nil, errForbidden("Account application was rejected")
	}

	tokens, err := auth.GenerateTokenPair(user.ID.String(), user.Email, user.Role)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, errInternal("Failed to log in")
	}

	return &LoginResponse{User: user, Tokens: tokens}, nil
}

// RefreshTokens exchanges a valid refresh token for a new pair.
func (s *UserService) RefreshTokens(ctx context.Context, refreshToken string) (*auth.TokenPair, *ServiceError) {
	claims, err := auth.ParseAndValidateToken(refreshToken, "refresh")
	if err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid refresh token"}
	}

	userID, _ := claims["user_id"].(string)
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid refresh token"}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 401, Message: "Invalid refresh token"}
		}
		s.logger.Error("refresh lookup failed", zap.Error(err))
		return nil, errInternal("Failed to refresh tokens")
	}

	tokens, err := auth.GenerateTokenPair(user.ID.String(), user.Email, user.Role)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, errInternal("Failed to refresh tokens")
	}
	return tokens, nil
}

// GetProfile returns the caller's own account.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, *ServiceError) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("User not found")
		}
		s.logger.Error("profile fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch profile")
	}
	return user, nil
}

// UpdateProfile applies a partial profile update.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*models.User, *ServiceError) {
	user, svcErr := s.GetProfile(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.ZipCode != nil {
		user.ZipCode = *req.ZipCode
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.BusinessName != nil {
		user.BusinessName = *req.BusinessName
	}
	if req.BusinessDescription != nil {
		user.BusinessDescription = *req.BusinessDescription
	}
	if req.BusinessWebsite != nil {
		user.BusinessWebsite = *req.BusinessWebsite
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("profile update failed", zap.Error(err))
		return nil, errInternal("Failed to update profile")
	}
	return user, nil
}

// ChangePassword verifies the current password before setting a new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) *ServiceError {
	user, svcErr := s.GetProfile(ctx, userID)
	if svcErr != nil {
		return svcErr
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return errBadRequest("Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return errInternal("Failed to change password")
	}

	user.Password = string(hashed)
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("password update failed", zap.Error(err))
		return errInternal("Failed to change password")
	}
	return nil
}
