// Package backend implements the sandbox HandyGo API: accounts, maintenance requests
// and reviews stored with gorm and rendered in the backend's own JSON dialect.
package backend

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/handygo/tenant-client/internal/apperr"
	"github.com/handygo/tenant-client/internal/config"
	"github.com/handygo/tenant-client/internal/dto"
	"github.com/handygo/tenant-client/internal/models"
)

var (
	ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials", nil)
	ErrTenantNotFound     = apperr.NotFound("tenant", nil)
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperr.BadRequest("email and password are required", nil)
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(&user)
	if err != nil {
		return nil, err
	}

	resp := &dto.LoginResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Name:        strings.TrimSpace(user.FirstName + " " + user.LastName),
		Role:        user.Role,
		PhoneNumber: user.PhoneNumber,
		Token:       token,
	}

	t, err := s.TenantForUser(user.ID)
	switch {
	case err == nil:
		resp.Tenant = toTenantResponse(t)
	case !errors.Is(err, ErrTenantNotFound):
		return nil, err
	}
	return resp, nil
}

// TenantForUser resolves the occupancy record of a user.
func (s *AuthService) TenantForUser(userID string) (*models.Tenant, error) {
	var t models.Tenant
	err := s.db.Where("user_id = ?", userID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	return &t, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func toTenantResponse(t *models.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:              t.ID,
		UserID:          t.UserID,
		Name:            t.Name,
		Email:           t.Email,
		Phone:           t.Phone,
		PropertyAddress: t.PropertyAddress,
		Unit:            t.Unit,
		CompanyID:       t.CompanyID,
	}
}
