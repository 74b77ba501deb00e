package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mtaasisi/NEON-POS-sub021/pkg/models"
)

// Service handles authentication logic
type Service struct {
	userRepo UserRepository
}

// UserRepository interface for user data access
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
	Update(user *models.User) error
}

// NewService creates a new auth service
func NewService(userRepo UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// LoginRequest represents login request data
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents login response data
type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
	ExpiresIn    int64       `json:"expires_in"`
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID   uuid.UUID  `json:"user_id"`
	TenantID *uuid.UUID `json:"tenant_id,omitempty"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	Type     string     `json:"type"` // access or refresh
	jwt.RegisteredClaims
}

// Login authenticates a user and returns tokens
func (s *Service) Login(req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !user.IsActive {
		return nil, errors.New("user account is disabled")
	}

	if !s.verifyPassword(req.Password, user.Password) {
		return nil, errors.New("invalid credentials")
	}

	now := time.Now()
	user.LastLoginAt = &now
	s.userRepo.Update(user)

	accessToken, err := s.generateToken(user, "access", getEnvOrDefault("JWT_ACCESS_DURATION", "15m"), 15*time.Minute)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateToken(user, "refresh", getEnvOrDefault("JWT_REFRESH_DURATION", "24h"), 24*time.Hour)
	if err != nil {
		return nil, err
	}

	accessDuration, _ := time.ParseDuration(getEnvOrDefault("JWT_ACCESS_DURATION", "15m"))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
		ExpiresIn:    int64(accessDuration.Seconds()),
	}, nil
}

// RefreshToken generates new tokens from a refresh token
func (s *Service) RefreshToken(tokenString string) (*LoginResponse, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != "refresh" {
		return nil, errors.New("invalid token type")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if !user.IsActive {
		return nil, errors.New("user account is disabled")
	}

	accessToken, err := s.generateToken(user, "access", getEnvOrDefault("JWT_ACCESS_DURATION", "15m"), 15*time.Minute)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateToken(user, "refresh", getEnvOrDefault("JWT_REFRESH_DURATION", "24h"), 24*time.Hour)
	if err != nil {
		return nil, err
	}

	accessDuration, _ := time.ParseDuration(getEnvOrDefault("JWT_ACCESS_DURATION", "15m"))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
		ExpiresIn:    int64(accessDuration.Seconds()),
	}, nil
}

// ValidateToken validates and parses a JWT token
func (s *Service) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// HashPassword hashes a password with bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Service) generateToken(user *models.User, tokenType, durationStr string, fallback time.Duration) (string, error) {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		duration = fallback
	}

	claims := TokenClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Email:    user.Email,
		Role:     user.Role,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "neon-pos",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (s *Service) verifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
