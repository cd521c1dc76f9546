package authservice

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/redstone-admin/internal/config"
	"github.com/GlebRadaev/redstone-admin/pkg/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice
type Revoker interface {
	Revoke(tokenID string, expiresAt time.Time)
}

type SessionEnder interface {
	EndSession(adminID string)
}

type Service struct {
	login        string
	passwordHash string
	tokenTTL     time.Duration

	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	revoker     Revoker
	sessions    SessionEnder
	now         func() time.Time
}

func New(cfg *config.Config, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, revoker Revoker, sessions SessionEnder) *Service {
	return &Service{
		login:        cfg.AdminLogin,
		passwordHash: cfg.AdminPasswordHash,
		tokenTTL:     cfg.TokenTTL,
		hashService:  hashService,
		jwtService:   jwtService,
		revoker:      revoker,
		sessions:     sessions,
		now:          time.Now,
	}
}

// Login checks the configured admin credentials and issues a console token.
func (s *Service) Login(ctx context.Context, login, password string) (string, time.Time, error) {
	if s.passwordHash == "" {
		zap.L().Error("admin login attempted but ADMIN_PASSWORD_HASH is not configured")
		return "", time.Time{}, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(login), []byte(s.login)) != 1 {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return "", time.Time{}, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(s.passwordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return "", time.Time{}, ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.tokenTTL)
	token, err := s.jwtService.GenerateJWT(login, expiresAt)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", time.Time{}, err
	}

	zap.L().Info("admin successfully authenticated", zap.String("login", login))
	return token, expiresAt, nil
}

// Logout revokes the console token and drops the admin's approval workflow.
func (s *Service) Logout(ac auth.AuthContext) {
	if ac.TokenID != "" {
		s.revoker.Revoke(ac.TokenID, ac.ExpiresAt)
	}
	s.sessions.EndSession(ac.AdminID)
	zap.L().Info("admin logged out", zap.String("adminID", ac.AdminID))
}
