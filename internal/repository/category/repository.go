package category

import (
	"context"

	"farmgate/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}
