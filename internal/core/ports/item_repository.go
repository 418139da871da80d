package ports

import (
	"context"

	"github.com/glossario/glossary-api/internal/core/domain"
)

// ItemRepository owns the ordered item collection. Ids are assigned by the
// repository from a strictly increasing counter starting at 1 and are never
// reused.
type ItemRepository interface {
	// Insert appends a new item built from fields plus a fresh id, returning
	// the stored item.
	Insert(ctx context.Context, fields domain.Item) (domain.Item, error)
	// Update merges fields over the item with the given id (fields win on
	// collision, the id key is ignored). Returns domain.ErrItemNotFound when
	// no item has that id; the collection is untouched in that case.
	Update(ctx context.Context, id int64, fields domain.Item) (domain.Item, error)
	// List returns all items in creation order.
	List(ctx context.Context) ([]domain.Item, error)
}
