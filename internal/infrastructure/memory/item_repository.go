package memory

import (
	"context"
	"sync"

	"github.com/glossario/glossary-api/internal/core/domain"
)

// ItemRepository holds the ordered item collection. A single mutex covers the
// id-assignment read-modify-write, so ids stay strictly increasing and unique
// however many creates interleave.
type ItemRepository struct {
	mu     sync.RWMutex
	items  []domain.Item
	byID   map[int64]int
	nextID int64
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		byID:   make(map[int64]int),
		nextID: 1,
	}
}

// Insert appends fields plus a fresh id and returns the stored item.
func (r *ItemRepository) Insert(_ context.Context, fields domain.Item) (domain.Item, error) {
	item := fields.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	item[domain.ItemIDField] = r.nextID
	r.byID[r.nextID] = len(r.items)
	r.items = append(r.items, item)
	r.nextID++

	return item.Clone(), nil
}

// Update merges fields over the stored item; fields win on key collision and
// the id key is never overwritten. The collection is unchanged on a miss.
func (r *ItemRepository) Update(_ context.Context, id int64, fields domain.Item) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}

	item := r.items[idx]
	for k, v := range fields {
		if k == domain.ItemIDField {
			continue
		}
		item[k] = v
	}

	return item.Clone(), nil
}

// List returns a snapshot of all items in creation order.
func (r *ItemRepository) List(_ context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Item, len(r.items))
	for i, item := range r.items {
		out[i] = item.Clone()
	}
	return out, nil
}
