package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/loginhub/auth-service/internal/adapters/transport/http/dto"
	appsvc "github.com/loginhub/auth-service/internal/app/auth/service"
	apptoken "github.com/loginhub/auth-service/internal/app/auth/token"
	authErrors "github.com/loginhub/auth-service/internal/domain/auth/errors"
	"github.com/loginhub/auth-service/internal/domain/auth/model"
	"github.com/loginhub/auth-service/internal/infra/config"
)

/* ──────────────────────────────── stubs ──────────────────────────────── */

type userRepoStub struct {
	users   map[string]model.User
	nextID  uint
	creates int
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[string]model.User{}, nextID: 1}
}

func (u *userRepoStub) Create(_ context.Context, m model.User) (model.User, error) {
	u.creates++
	if _, ok := u.users[m.Email]; ok {
		return model.User{}, authErrors.ErrAlreadyExists
	}
	m.ID = u.nextID
	u.nextID++
	u.users[m.Email] = m
	return m, nil
}

func (u *userRepoStub) GetByEmail(_ context.Context, email string) (model.User, error) {
	v, ok := u.users[email]
	if !ok {
		return model.User{}, authErrors.ErrNotFound
	}
	return v, nil
}

/* ──────────────────────────────── tests ──────────────────────────────── */

func newService(repo *userRepoStub) (appsvc.Service, *apptoken.TokenUtilImpl) {
	tokens := apptoken.NewTokenUtil(&config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour})
	return appsvc.New(repo, tokens, validator.New()), tokens
}

func TestRegister_Success(t *testing.T) {
	repo := newUserRepoStub()
	svc, _ := newService(repo)

	user, err := svc.Register(context.Background(), dto.RegisterDTO{
		Name: "Ana", Email: "ana@x.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.Positive(t, user.ID)
	require.Equal(t, "Ana", user.Name)
	require.Equal(t, "ana@x.com", user.Email)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "secret123", user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newUserRepoStub()
	svc, _ := newService(repo)

	in := dto.RegisterDTO{Name: "Ana", Email: "ana@x.com", Password: "secret123"}
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), in)
	require.True(t, authErrors.IsAlreadyExists(err))
}

func TestRegister_MissingFields(t *testing.T) {
	cases := []dto.RegisterDTO{
		{Email: "ana@x.com", Password: "secret123"},
		{Name: "Ana", Password: "secret123"},
		{Name: "Ana", Email: "ana@x.com"},
	}
	for _, in := range cases {
		repo := newUserRepoStub()
		svc, _ := newService(repo)

		_, err := svc.Register(context.Background(), in)
		require.True(t, authErrors.IsInvalidArgument(err), "input %+v", in)
		require.Zero(t, repo.creates, "store must not be touched for %+v", in)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newUserRepoStub()
	svc, tokens := newService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		Name: "Ana", Email: "ana@x.com", Password: "secret123",
	})
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "ana@x.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	claims, err := tokens.Verify(session.Token)
	require.NoError(t, err)
	require.Equal(t, session.User.ID, claims.UserID)
	require.Equal(t, "Ana", claims.Name)
	require.Equal(t, "ana@x.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newUserRepoStub()
	svc, _ := newService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		Name: "Ana", Email: "ana@x.com", Password: "secret123",
	})
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "ana@x.com", Password: "wrong",
	})
	require.True(t, authErrors.IsInvalidCredentials(err))
	require.Empty(t, session.Token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := newUserRepoStub()
	svc, _ := newService(repo)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "nobody@x.com", Password: "secret123",
	})
	require.True(t, authErrors.IsNotFound(err))
}

func TestLogin_MissingFields(t *testing.T) {
	repo := newUserRepoStub()
	svc, _ := newService(repo)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "ana@x.com"})
	require.True(t, authErrors.IsInvalidArgument(err))

	_, err = svc.Login(context.Background(), dto.LoginDTO{Password: "secret123"})
	require.True(t, authErrors.IsInvalidArgument(err))
}
