package account

import (
	"context"

	"farmgate/internal/domain"
)

// Repository persists and fetches accounts.
type Repository interface {
	Create(ctx context.Context, a domain.Account) (*domain.Account, error)
	GetByUsernameAndRole(ctx context.Context, username string, role domain.Role) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}
