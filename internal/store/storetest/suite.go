// Package storetest holds a compliance suite shared by all store drivers.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shopapp/shopapp-backend/internal/model"
	"github.com/shopapp/shopapp-backend/internal/store"
)

// Run exercises a minimal compliance suite against a store.Store
// implementation. makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	ownerID := "u-" + uuid.New().String()
	memberID := "u-" + uuid.New().String()
	strangerID := "u-" + uuid.New().String()

	// Create
	created, err := s.Lists().Create(ctx, &model.ShoppingList{
		OwnerID:      ownerID,
		Name:         "groceries",
		Members:      []model.Member{{UserID: ownerID, Role: model.RoleOwner}},
		Items:        []model.Item{},
		CreationTime: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ListID == "" {
		t.Fatalf("Create: empty list id")
	}

	// FindByID round-trip
	got, err := s.Lists().FindByID(ctx, created.ListID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Name != "groceries" || got.OwnerID != ownerID {
		t.Fatalf("FindByID: got=%+v", got)
	}
	if len(got.Members) != 1 || got.Members[0].Role != model.RoleOwner {
		t.Fatalf("FindByID members: got=%+v", got.Members)
	}
	if got.Items == nil {
		t.Fatalf("FindByID: items must be non-nil")
	}

	// Missing id maps to ErrNotFound
	if _, err := s.Lists().FindByID(ctx, "5f1f77bcf86cd799439011aa"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("FindByID missing: want ErrNotFound, got %v", err)
	}

	// Save adds a member and an item
	qty := 2.0
	got.Members = append(got.Members, model.Member{UserID: memberID, Role: model.RoleMember})
	got.Items = append(got.Items, model.Item{ItemID: uuid.New().String(), Name: "milk", Quantity: &qty})
	if _, err := s.Lists().Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = s.Lists().FindByID(ctx, created.ListID)
	if err != nil {
		t.Fatalf("FindByID after Save: %v", err)
	}
	if len(got.Members) != 2 || len(got.Items) != 1 {
		t.Fatalf("Save not persisted: members=%d items=%d", len(got.Members), len(got.Items))
	}
	if got.Items[0].Quantity == nil || *got.Items[0].Quantity != 2 {
		t.Fatalf("Save item quantity: got=%+v", got.Items[0])
	}

	// Second, newer list owned by someone else but shared with ownerID
	second, err := s.Lists().Create(ctx, &model.ShoppingList{
		OwnerID: strangerID,
		Name:    "hardware",
		Members: []model.Member{
			{UserID: strangerID, Role: model.RoleOwner},
			{UserID: ownerID, Role: model.RoleViewer},
		},
		CreationTime: time.Now().UTC().Add(50 * time.Millisecond),
	})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	// Find owner-or-member, newest first
	all, err := s.Lists().Find(ctx, model.ListQuery{UserID: ownerID})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Find: want 2 lists, got %d", len(all))
	}
	if all[0].ListID != second.ListID {
		t.Fatalf("Find: want newest first, got %s first", all[0].ListID)
	}

	// Find ownedOnly excludes lists where the user is only a member
	owned, err := s.Lists().Find(ctx, model.ListQuery{UserID: ownerID, OwnedOnly: true})
	if err != nil {
		t.Fatalf("Find ownedOnly: %v", err)
	}
	if len(owned) != 1 || owned[0].ListID != created.ListID {
		t.Fatalf("Find ownedOnly: got=%+v", owned)
	}

	// Delete removes the whole document
	if err := s.Lists().DeleteByID(ctx, created.ListID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if _, err := s.Lists().FindByID(ctx, created.ListID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("FindByID after delete: want ErrNotFound, got %v", err)
	}
	if err := s.Lists().DeleteByID(ctx, created.ListID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteByID twice: want ErrNotFound, got %v", err)
	}

	// Save on a deleted list reports not found
	if _, err := s.Lists().Save(ctx, got); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Save deleted: want ErrNotFound, got %v", err)
	}
}
