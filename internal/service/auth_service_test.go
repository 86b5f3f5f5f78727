package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"claimvista/internal/dto"
	"claimvista/internal/models"
	"claimvista/internal/repository"
	"claimvista/pkg/auth"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryUserRepo is an in-memory UserRepository for tests.
type memoryUserRepo struct {
	users map[string]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*models.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func newAuthService() (*AuthService, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwtManager, zap.NewNop()), repo
}

func TestRegister_CreatesUserWithRole(t *testing.T) {
	s, repo := newAuthService()

	resp, err := s.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Hospital Staff",
		Email:    "hospital@example.com",
		Password: "password",
		Role:     "hospital",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, "Bearer", resp.TokenType)
	require.Equal(t, "hospital", resp.User.Role)

	stored, err := repo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoleHospital, stored.Role)
	// Password is stored hashed, never verbatim.
	require.NotEqual(t, "password", stored.Password)
	require.True(t, auth.CheckPasswordHash("password", stored.Password))
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	s, _ := newAuthService()

	_, err := s.Register(context.Background(), &dto.RegisterRequest{
		Name: "X", Email: "x@example.com", Password: "password", Role: "root",
	})
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, _ := newAuthService()
	req := &dto.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "password", Role: "user",
	}

	_, err := s.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = s.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrUserExists)
}

// failingUserRepo simulates a database outage on lookups.
type failingUserRepo struct {
	*memoryUserRepo
	err error
}

func (r *failingUserRepo) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, r.err
}

func TestRegister_LookupFailureDoesNotCreateUser(t *testing.T) {
	inner := newMemoryUserRepo()
	repo := &failingUserRepo{memoryUserRepo: inner, err: errors.New("connection refused")}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	s := NewAuthService(repo, jwtManager, zap.NewNop())

	// A failing duplicate check is not the same as "email free": the error
	// must surface and no account may be created.
	_, err := s.Register(context.Background(), &dto.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "password", Role: "user",
	})
	require.ErrorContains(t, err, "connection refused")
	require.Empty(t, inner.users)
}

func TestLogin(t *testing.T) {
	s, _ := newAuthService()
	_, err := s.Register(context.Background(), &dto.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "password", Role: "user",
	})
	require.NoError(t, err)

	resp, err := s.Login(context.Background(), &dto.LoginRequest{
		Email: "a@example.com", Password: "password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "user", resp.User.Role)

	_, err = s.Login(context.Background(), &dto.LoginRequest{
		Email: "a@example.com", Password: "wrong",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(context.Background(), &dto.LoginRequest{
		Email: "missing@example.com", Password: "password",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	s, _ := newAuthService()
	registered, err := s.Register(context.Background(), &dto.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "password", Role: "agent",
	})
	require.NoError(t, err)

	refreshed, err := s.RefreshToken(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)
	require.Equal(t, registered.User.ID, refreshed.User.ID)

	_, err = s.RefreshToken(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile_VanishedUserIsNotFound(t *testing.T) {
	s, repo := newAuthService()
	registered, err := s.Register(context.Background(), &dto.RegisterRequest{
		Name: "A", Email: "a@example.com", Password: "password", Role: "user",
	})
	require.NoError(t, err)

	profile, err := s.Profile(context.Background(), registered.User.ID)
	require.NoError(t, err)
	require.Equal(t, "a@example.com", profile.Email)

	// A valid token whose subject no longer exists must not produce a user.
	delete(repo.users, registered.User.ID)
	_, err = s.Profile(context.Background(), registered.User.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}
