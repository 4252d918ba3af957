package store

import (
	"context"

	"github.com/shopapp/shopapp-backend/internal/model"
)

// Store exposes the persistence operations the command service needs.
// Implementations live under internal/store/<driver>/ (memstore, sqlite,
// postgres); the service layer depends only on this interface.
type Store interface {
	Lists() Lists
}

// Lists persists shopping list documents. A list document owns its member
// and item sequences; DeleteByID removes all of them as a unit.
type Lists interface {
	Create(ctx context.Context, l *model.ShoppingList) (*model.ShoppingList, error)
	FindByID(ctx context.Context, listID string) (*model.ShoppingList, error)
	// Find returns lists matching q, newest first by creation time. With
	// OwnedOnly set it matches on owner only, otherwise on owner or member.
	Find(ctx context.Context, q model.ListQuery) ([]*model.ShoppingList, error)
	Save(ctx context.Context, l *model.ShoppingList) (*model.ShoppingList, error)
	DeleteByID(ctx context.Context, listID string) error
}
