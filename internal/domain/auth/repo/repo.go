package repo

import (
	"context"

	"github.com/loginhub/auth-service/internal/domain/auth/model"
)

// UserRepo is the credential store. Create must persist synchronously and
// fail with errors.ErrAlreadyExists when the email is taken, leaving no
// partial record behind.
type UserRepo interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}
