package auth

import (
	"errors"

	"lumak-be/internal/config"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Service authenticates the single shop administrator configured via
// environment variables and issues session tokens for the UI.
type Service interface {
	Login(username, password string) (string, error)
}

type service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{cfg: cfg}
}

func (s *service) Login(username, password string) (string, error) {
	if username != s.cfg.AdminUsername {
		return "", ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, s.cfg.AdminPasswordHash) {
		return "", ErrInvalidCredentials
	}

	return GenerateToken(s.cfg.JWTSecret, username)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
