package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vaishnaviugal12/Buisness-Management-System/config"
)

type JwtService struct {
	secret    []byte
	expiresIn time.Duration
}

func NewJwtService(cfg *config.Config) *JwtService {
	return &JwtService{
		secret:    []byte(cfg.JWT.Secret),
		expiresIn: cfg.JWT.ExpiresIn,
	}
}

func (s *JwtService) GenerateToken(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.expiresIn).Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *JwtService) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
