package ports

import (
	"context"

	"github.com/glossario/glossary-api/internal/core/domain"
)

type ItemService interface {
	Create(ctx context.Context, payload domain.Item) (domain.Item, error)
	Update(ctx context.Context, id int64, payload domain.Item) (domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
}
