package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/samadhan-service/internal/auth"
	"github.com/spec-kit/samadhan-service/internal/config"
	"github.com/spec-kit/samadhan-service/internal/domain"
	"github.com/spec-kit/samadhan-service/internal/repository"
	apperrors "github.com/spec-kit/samadhan-service/pkg/util"
)

// AuthService coordinates registration and login flows, including the
// admin allowlist gate.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	allowlist  auth.Allowlist
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		allowlist:  auth.ParseAllowlist(cfg.Auth.AdminAllowlist),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the JWT manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// RegisterCitizen creates a new citizen account.
func (s *AuthService) RegisterCitizen(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.TrimSpace(email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.NewRepositoryUnavailable(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.NewRepositoryUnavailable(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, domain.RoleCitizen)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// LoginCitizen authenticates a citizen.
func (s *AuthService) LoginCitizen(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, domain.RoleCitizen)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// LoginAdmin authenticates an administrator. The account's email must
// appear in the configured allowlist; on mismatch the sign-in is refused
// before credentials are checked. On match the token carries the admin
// role claim.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	if !s.allowlist.Allows(email) {
		return nil, "", time.Time{}, apperrors.NewForbidden("access restricted: only authorized accounts may sign in")
	}
	user, err := s.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, domain.RoleAdmin)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// AnonymousToken mints a fresh identity token for clients without one. The
// client persists and replays it so the upvote-once guarantee holds for
// anonymous actors.
func (s *AuthService) AnonymousToken() string {
	return "anon-" + uuid.NewString()
}

func (s *AuthService) verifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.NewRepositoryUnavailable(err)
	}
	if user.Status != domain.UserStatusActive {
		return nil, apperrors.NewForbidden("account suspended")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	return user, nil
}
