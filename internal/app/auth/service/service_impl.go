package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/loginhub/auth-service/internal/adapters/transport/http/dto"
	"github.com/loginhub/auth-service/internal/app/auth/hash"
	customErrors "github.com/loginhub/auth-service/internal/domain/auth/errors"
	"github.com/loginhub/auth-service/internal/domain/auth/model"
	"github.com/loginhub/auth-service/internal/domain/auth/repo"
	"github.com/loginhub/auth-service/internal/domain/auth/token"
)

type authService struct {
	userRepo repo.UserRepo
	tokens   token.TokenUtil
	v        *validator.Validate
}

type Service interface {
	Register(context.Context, dto.RegisterDTO) (model.User, error)
	Login(context.Context, dto.LoginDTO) (model.Session, error)
}

func New(ur repo.UserRepo, tu token.TokenUtil, v *validator.Validate) Service {
	return &authService{userRepo: ur, tokens: tu, v: v}
}

func (a *authService) Register(ctx context.Context, in dto.RegisterDTO) (model.User, error) {
	if err := a.v.Struct(in); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	passwordHash, err := hash.Password(in.Password)
	if err != nil {
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	user := model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
	}
	created, err := a.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.User{}, customErrors.ErrAlreadyExists
		}
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	return created, nil
}

func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (model.Session, error) {
	if err := a.v.Struct(in); err != nil {
		return model.Session{}, customErrors.NewInvalidArgument(err.Error())
	}

	user, err := a.userRepo.GetByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		// Kept distinct from a password mismatch; the handler still maps
		// both onto near-identical client responses.
		return model.Session{}, customErrors.ErrNotFound
	case err != nil:
		return model.Session{}, customErrors.WrapInternal(err, "Login")
	}

	if !hash.Verify(in.Password, user.PasswordHash) {
		return model.Session{}, customErrors.ErrInvalidCredentials
	}

	signed, err := a.tokens.Issue(user)
	if err != nil {
		return model.Session{}, customErrors.WrapInternal(err, "Login")
	}

	return model.Session{Token: signed, User: user}, nil
}
