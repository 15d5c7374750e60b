package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/samadhan-service/internal/config"
	"github.com/spec-kit/samadhan-service/internal/domain"
	"github.com/spec-kit/samadhan-service/internal/service"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
	calls   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.nextID++
	user.ID = fmt.Sprintf("u-%d", f.nextID)
	stored := *user
	f.byEmail[strings.ToLower(user.Email)] = &stored
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	stored, ok := f.byEmail[strings.ToLower(user.Email)]
	if !ok {
		return pgx.ErrNoRows
	}
	*stored = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.calls++
	stored, ok := f.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func newTestAuthService(repo *fakeUserRepo, allowlist string) *service.AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 15,
			BcryptCost:            bcrypt.MinCost,
			AdminAllowlist:        allowlist,
		},
	}
	return service.NewAuthService(cfg, service.AuthDependencies{UserRepo: repo})
}

func TestRegisterCitizenAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")
	ctx := context.Background()

	user, token, exp, err := svc.RegisterCitizen(ctx, "Asha", "asha@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	loggedIn, token, _, err := svc.LoginCitizen(ctx, "asha@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)
}

func TestRegisterCitizenDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")
	ctx := context.Background()

	_, _, _, err := svc.RegisterCitizen(ctx, "Asha", "asha@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, _, _, err = svc.RegisterCitizen(ctx, "Imposter", "asha@example.com", "other-pass")
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", domainCode(t, err))
}

func TestLoginCitizenWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")
	ctx := context.Background()

	_, _, _, err := svc.RegisterCitizen(ctx, "Asha", "asha@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, _, _, err = svc.LoginCitizen(ctx, "asha@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", domainCode(t, err))
}

func TestLoginAdminRefusesUnlistedBeforeCredentialCheck(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "admin@gov.in")
	ctx := context.Background()

	_, _, _, err := svc.RegisterCitizen(ctx, "Asha", "asha@example.com", "s3cret-pass")
	require.NoError(t, err)
	repo.calls = 0

	_, _, _, err = svc.LoginAdmin(ctx, "asha@example.com", "s3cret-pass")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", domainCode(t, err))
	// Refused by the allowlist gate; credentials were never consulted.
	assert.Zero(t, repo.calls)
}

func TestLoginAdminAllowlistedCaseInsensitive(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "Admin@Gov.In")
	ctx := context.Background()

	_, _, _, err := svc.RegisterCitizen(ctx, "DM", "admin@gov.in", "s3cret-pass")
	require.NoError(t, err)

	user, token, _, err := svc.LoginAdmin(ctx, "ADMIN@GOV.IN", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
}

func TestAnonymousTokensAreUnique(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), "")

	first := svc.AnonymousToken()
	second := svc.AnonymousToken()

	assert.True(t, strings.HasPrefix(first, "anon-"))
	assert.NotEqual(t, first, second)
}
