// Package memstore provides an in-memory store.Store used by tests and by
// the memory DB driver in local mode.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/shopapp/shopapp-backend/internal/model"
	"github.com/shopapp/shopapp-backend/internal/store"
)

type memStore struct {
	mu    sync.RWMutex
	lists map[string]*model.ShoppingList
}

// New returns an empty in-memory store.
func New() store.Store {
	return &memStore{lists: map[string]*model.ShoppingList{}}
}

func (s *memStore) Lists() store.Lists { return (*memLists)(s) }

// HealthPing implements health.HealthPinger; the map is always reachable.
func (s *memStore) HealthPing(ctx context.Context) error { return nil }

type memLists memStore

func (m *memLists) Create(ctx context.Context, l *model.ShoppingList) (*model.ShoppingList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := clone(l)
	if out.ListID == "" {
		out.ListID = uuid.New().String()
	}
	m.lists[out.ListID] = out
	return clone(out), nil
}

func (m *memLists) FindByID(ctx context.Context, listID string) (*model.ShoppingList, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.lists[listID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return clone(l), nil
}

func (m *memLists) Find(ctx context.Context, q model.ListQuery) ([]*model.ShoppingList, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.ShoppingList
	for _, l := range m.lists {
		if l.OwnerID == q.UserID || (!q.OwnedOnly && l.HasMember(q.UserID)) {
			out = append(out, clone(l))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreationTime.After(out[j].CreationTime)
	})
	return out, nil
}

func (m *memLists) Save(ctx context.Context, l *model.ShoppingList) (*model.ShoppingList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lists[l.ListID]; !ok {
		return nil, model.ErrNotFound
	}
	m.lists[l.ListID] = clone(l)
	return clone(l), nil
}

func (m *memLists) DeleteByID(ctx context.Context, listID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lists[listID]; !ok {
		return model.ErrNotFound
	}
	delete(m.lists, listID)
	return nil
}

// clone deep-copies a list so callers never share slices with the map.
func clone(l *model.ShoppingList) *model.ShoppingList {
	out := *l
	out.Members = append([]model.Member(nil), l.Members...)
	out.Items = make([]model.Item, len(l.Items))
	for i, it := range l.Items {
		out.Items[i] = it
		if it.Quantity != nil {
			q := *it.Quantity
			out.Items[i].Quantity = &q
		}
		if it.Unit != nil {
			u := *it.Unit
			out.Items[i].Unit = &u
		}
	}
	if l.Description != nil {
		d := *l.Description
		out.Description = &d
	}
	return &out
}
