package auth_test

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vaishnaviugal12/Buisness-Management-System/config"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/auth"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/middleware"
)

func newTestConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			ExpiresIn:     time.Hour,
			AdminEmail:    "owner@shop.example",
			AdminPassword: string(hash),
		},
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cfg := newTestConfig(t, "s3cret")
	jwtSvc := middleware.NewJwtService(cfg)
	svc := auth.NewService(cfg, jwtSvc)

	t.Run("valid credentials return a verifiable token", func(t *testing.T) {
		token, err := svc.Login(ctx, "owner@shop.example", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := jwtSvc.VerifyToken(token)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if claims["sub"] != "owner@shop.example" {
			t.Fatalf("expected admin subject, got %v", claims["sub"])
		}
	})

	t.Run("email match is case insensitive", func(t *testing.T) {
		if _, err := svc.Login(ctx, "  OWNER@shop.example ", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, "owner@shop.example", "wrong")
		if err != appErrors.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, "someone@else.example", "s3cret")
		if err != appErrors.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unconfigured credentials fail closed", func(t *testing.T) {
		empty := &config.Config{}
		unconfigured := auth.NewService(empty, middleware.NewJwtService(empty))
		_, err := unconfigured.Login(ctx, "owner@shop.example", "s3cret")
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "INTERNAL_SERVER_ERROR" {
			t.Fatalf("expected internal error, got %v", err)
		}
	})
}
