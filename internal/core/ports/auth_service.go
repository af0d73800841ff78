package ports

import (
	"context"

	"github.com/devconnector/api/internal/core/domain"
)

// AuthService implements registration, login and current-user lookup.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
