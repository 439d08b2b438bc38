package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vaishnaviugal12/Buisness-Management-System/config"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/middleware"
)

// Service authenticates the single configured admin account. The shop runs as
// a one-operator system; there is no user table.
type Service struct {
	Jwt *middleware.JwtService

	adminEmail        string
	adminPasswordHash string
}

func NewService(cfg *config.Config, jwtSvc *middleware.JwtService) *Service {
	return &Service{
		Jwt:               jwtSvc,
		adminEmail:        cfg.JWT.AdminEmail,
		adminPasswordHash: cfg.JWT.AdminPassword,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		return "", appErrors.ErrInternalServer.WithDetails(map[string]interface{}{
			"reason": "admin credentials not configured",
		})
	}

	if !strings.EqualFold(strings.TrimSpace(email), s.adminEmail) {
		return "", appErrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", appErrors.ErrInvalidCredentials
	}

	token, err := s.Jwt.GenerateToken(s.adminEmail)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return token, nil
}
