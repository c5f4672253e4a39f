package service

import (
	"context"
	"testing"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/config"
	"github.com/gobro228/ambulance-site/internal/dto"
	"github.com/gobro228/ambulance-site/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apierror.E(apierror.NotFound, "user %s not found", id)
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Active {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apierror.E(apierror.NotFound, "user %q not found", username)
}

func newAuthFixture(t *testing.T) (*stubUserRepo, AuthService) {
	t.Helper()
	repo := newStubUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("dispatch"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &model.User{
		Username:     "operator1",
		PasswordHash: string(hash),
		FullName:     "Сидорова Анна",
		Role:         "dispatcher",
		Active:       true,
	}))
	return repo, NewAuthService(repo, cfg)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	_, svc := newAuthFixture(t)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "operator1", Password: "dispatch"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "dispatcher", resp.User.Role)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "operator1", Password: "wrong"})
	require.Error(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "dispatch"})
	require.Error(t, err)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	repo, svc := newAuthFixture(t)

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "operator1", Password: "dispatch"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "operator1", refreshed.User.Username)

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not.a.token")
		require.Error(t, err)
	})

	t.Run("deactivated user rejected", func(t *testing.T) {
		for _, u := range repo.users {
			u.Active = false
		}
		_, err := svc.Refresh(ctx, login.RefreshToken)
		require.Error(t, err)
	})
}
