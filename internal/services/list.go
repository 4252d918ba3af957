package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopapp/shopapp-backend/internal/auth"
	"github.com/shopapp/shopapp-backend/internal/model"
	"github.com/shopapp/shopapp-backend/internal/store"
)

// ListService implements the shopping list commands over the persistence
// port. Resource-level authorization happens here, after a successful load,
// so a missing list always reports not-found before any role fact about it
// is revealed.
type ListService struct {
	store store.Store
}

func NewListService(s store.Store) *ListService { return &ListService{store: s} }

// ListPatch carries the mutable fields of shoppingList/update. Nil means
// "leave untouched"; ClearDescription records an explicit JSON null.
type ListPatch struct {
	Name             *string
	Description      *string
	ClearDescription bool
}

// CreateList produces a new list with the caller as sole owner-role member.
func (s *ListService) CreateList(ctx context.Context, callerID, name string, description *string) (*model.ShoppingList, error) {
	l := &model.ShoppingList{
		OwnerID:      callerID,
		Name:         name,
		Description:  description,
		Members:      []model.Member{{UserID: callerID, Role: model.RoleOwner}},
		Items:        []model.Item{},
		CreationTime: time.Now().UTC(),
	}
	return s.store.Lists().Create(ctx, l)
}

// GetList loads a list the caller owns or is a member of.
func (s *ListService) GetList(ctx context.Context, callerID, listID string) (*model.ShoppingList, error) {
	l, err := s.store.Lists().FindByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !auth.CanRead(l, callerID) {
		return nil, model.ErrForbidden
	}
	return l, nil
}

// ListLists returns the caller's lists, newest first. With ownedOnly set it
// returns only lists the caller owns.
func (s *ListService) ListLists(ctx context.Context, callerID string, ownedOnly bool) ([]*model.ShoppingList, error) {
	return s.store.Lists().Find(ctx, model.ListQuery{UserID: callerID, OwnedOnly: ownedOnly})
}

// UpdateList applies only the fields present in the patch. Owner only.
func (s *ListService) UpdateList(ctx context.Context, callerID, listID string, patch ListPatch) (*model.ShoppingList, error) {
	l, err := s.store.Lists().FindByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManage(l, callerID) {
		return nil, model.ErrForbidden
	}

	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.ClearDescription {
		l.Description = nil
	} else if patch.Description != nil {
		l.Description = patch.Description
	}
	return s.store.Lists().Save(ctx, l)
}

// DeleteList removes the list with its members and items as a unit. Owner only.
func (s *ListService) DeleteList(ctx context.Context, callerID, listID string) error {
	l, err := s.store.Lists().FindByID(ctx, listID)
	if err != nil {
		return err
	}
	if !auth.CanManage(l, callerID) {
		return model.ErrForbidden
	}
	return s.store.Lists().DeleteByID(ctx, l.ListID)
}

// AddMember appends a member entry. Owner only. A userId already present
// among members makes the call a success no-op, whatever its role.
func (s *ListService) AddMember(ctx context.Context, callerID, listID, userID string, role model.Role) (*model.ShoppingList, error) {
	l, err := s.store.Lists().FindByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManage(l, callerID) {
		return nil, model.ErrForbidden
	}
	if l.HasMember(userID) {
		return l, nil
	}
	l.Members = append(l.Members, model.Member{UserID: userID, Role: role})
	return s.store.Lists().Save(ctx, l)
}

// AddItem appends a new item with a fresh identifier. Owner or member.
func (s *ListService) AddItem(ctx context.Context, callerID, listID, name string, quantity *float64, unit *string) (*model.Item, error) {
	l, err := s.store.Lists().FindByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !auth.CanRead(l, callerID) {
		return nil, model.ErrForbidden
	}

	item := model.Item{
		ItemID:      uuid.New().String(),
		Name:        name,
		Quantity:    quantity,
		Unit:        unit,
		IsPurchased: false,
	}
	l.Items = append(l.Items, item)
	if _, err := s.store.Lists().Save(ctx, l); err != nil {
		return nil, err
	}
	return &item, nil
}
