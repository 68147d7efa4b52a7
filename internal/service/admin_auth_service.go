package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"rentacar/internal/config"
)

type AdminAuthService interface {
	Login(username, password string) (string, error)
}

type adminAuthService struct {
	cfg config.Config
}

func NewAdminAuthService(cfg config.Config) AdminAuthService {
	return &adminAuthService{cfg: cfg}
}

// Login checks the credentials against the configured admin account and
// returns a signed JWT. The admin password is configured as a bcrypt hash.
func (s *adminAuthService) Login(username, password string) (string, error) {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPasswordHash == "" {
		return "", errors.New("admin account not configured")
	}
	if username != s.cfg.AdminUsername {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	if s.cfg.JWTSecret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
