package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/glossario/glossary-api/internal/core/domain"
	"github.com/glossario/glossary-api/internal/core/ports"
)

// ItemService exposes the item collection. Authorization is enforced at the
// router; once a call reaches the service it always proceeds.
type ItemService struct {
	repo   ports.ItemRepository
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

// Create stores payload as a new item. Any shape is accepted; the reserved id
// key is assigned by the repository.
func (s *ItemService) Create(ctx context.Context, payload domain.Item) (domain.Item, error) {
	item, err := s.repo.Insert(ctx, payload)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create item")
		return nil, err
	}

	s.logger.Info().Int64("item_id", item.ID()).Msg("item created")
	return item, nil
}

// Update merges payload over the existing item. The payload wins on key
// collision; the id is immutable.
func (s *ItemService) Update(ctx context.Context, id int64, payload domain.Item) (domain.Item, error) {
	item, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", id).Msg("item updated")
	return item, nil
}

// List returns all items in creation order.
func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.repo.List(ctx)
}
