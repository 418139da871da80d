package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/glossario/glossary-api/internal/core/domain"
)

type stubItemRepo struct {
	items     []domain.Item
	nextID    int64
	insertErr error
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{nextID: 1}
}

func (r *stubItemRepo) Insert(_ context.Context, fields domain.Item) (domain.Item, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	item := fields.Clone()
	item[domain.ItemIDField] = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item.Clone(), nil
}

func (r *stubItemRepo) Update(_ context.Context, id int64, fields domain.Item) (domain.Item, error) {
	for _, item := range r.items {
		if item.ID() != id {
			continue
		}
		for k, v := range fields {
			if k == domain.ItemIDField {
				continue
			}
			item[k] = v
		}
		return item.Clone(), nil
	}
	return nil, domain.ErrItemNotFound
}

func (r *stubItemRepo) List(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, len(r.items))
	for i, item := range r.items {
		out[i] = item.Clone()
	}
	return out, nil
}

func TestItemService_Create_AssignsIDs(t *testing.T) {
	svc := NewItemService(newStubItemRepo(), zerolog.Nop())

	first, err := svc.Create(context.Background(), domain.Item{"name": "plane"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID() != 1 || first["name"] != "plane" {
		t.Fatalf("unexpected item: %+v", first)
	}

	second, err := svc.Create(context.Background(), domain.Item{"name": "car"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if second.ID() != 2 {
		t.Fatalf("expected id 2, got %d", second.ID())
	}
}

func TestItemService_Create_RepoFailure(t *testing.T) {
	repo := newStubItemRepo()
	repo.insertErr = errors.New("boom")
	svc := NewItemService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), domain.Item{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestItemService_Update_MergesPayload(t *testing.T) {
	svc := NewItemService(newStubItemRepo(), zerolog.Nop())

	_, _ = svc.Create(context.Background(), domain.Item{"name": "plane", "wings": float64(2)})

	updated, err := svc.Update(context.Background(), 1, domain.Item{"name": "jet"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated["name"] != "jet" {
		t.Fatalf("payload must win on collision, got %v", updated["name"])
	}
	if updated["wings"] != float64(2) {
		t.Fatalf("untouched fields must survive, got %v", updated["wings"])
	}
	if updated.ID() != 1 {
		t.Fatalf("id must be immutable, got %d", updated.ID())
	}
}

func TestItemService_Update_NotFound(t *testing.T) {
	svc := NewItemService(newStubItemRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), 42, domain.Item{"name": "x"}); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemService_List_CreationOrder(t *testing.T) {
	svc := NewItemService(newStubItemRepo(), zerolog.Nop())

	_, _ = svc.Create(context.Background(), domain.Item{"name": "a"})
	_, _ = svc.Create(context.Background(), domain.Item{"name": "b"})

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 || items[0]["name"] != "a" || items[1]["name"] != "b" {
		t.Fatalf("unexpected order: %+v", items)
	}
}
