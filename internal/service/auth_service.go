package service

import (
	"context"
	"course_admin_backend/internal/config"
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/repository"
	"course_admin_backend/internal/util"
	"course_admin_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const revokedTokenPrefix = "revoked_jti:"

type AuthService struct {
	Repo  *repository.AdminRepository
	Redis *redis.Client
	JWT   config.JWTConfig
}

func NewAuthService(repo *repository.AdminRepository, rdb *redis.Client, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{Repo: repo, Redis: rdb, JWT: jwtCfg}
}

// Login verifies the admin password and issues a JWT. The error is the same
// for unknown email and wrong password.
func (s *AuthService) Login(email, password string) (string, *model.Admin, error) {
	admin, err := s.Repo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCreds
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCreds
	}

	token, err := util.GenerateJWT(admin, s.JWT.Secret, s.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	if err := s.Repo.UpdateLastLogin(admin.ID); err != nil {
		logger.Log.Warn("failed to record last login",
			zap.Uint("admin_id", admin.ID),
			zap.Error(err))
	}

	return token, admin, nil
}

// Logout revokes the token's jti until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	if s.Redis == nil || claims.ID == "" {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	return s.Redis.Set(ctx, revokedTokenPrefix+claims.ID, "1", ttl).Err()
}

// IsRevoked reports whether a jti has been logged out.
func (s *AuthService) IsRevoked(ctx context.Context, jti string) bool {
	if s.Redis == nil || jti == "" {
		return false
	}
	n, err := s.Redis.Exists(ctx, revokedTokenPrefix+jti).Result()
	if err != nil {
		// Fail open: an unreachable redis must not lock every admin out.
		logger.Log.Warn("token revocation check failed", zap.Error(err))
		return false
	}
	return n > 0
}

func (s *AuthService) GetCurrentAdmin(adminID uint) (*model.Admin, error) {
	admin, err := s.Repo.FindByID(adminID)
	if err != nil {
		return nil, util.ErrUnauthorized
	}
	return admin, nil
}
