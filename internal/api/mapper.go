package api

import "github.com/shopapp/shopapp-backend/internal/model"

// shoppingListDTO normalizes a stored list into its wire shape: member and
// item sequences are always arrays, never null, and description is emitted
// explicitly as null when absent (no omitempty on the model).
func shoppingListDTO(l *model.ShoppingList) *model.ShoppingList {
	out := *l
	if out.Members == nil {
		out.Members = []model.Member{}
	}
	if out.Items == nil {
		out.Items = []model.Item{}
	}
	return &out
}

// itemDTO is the shoppingItem/add wire shape: the item plus the containing
// list's id, which the stored item does not repeat.
type itemDTO struct {
	model.Item
	ListID string `json:"listId"`
}

// shoppingListsDTO maps a result set, yielding an empty array rather than
// null when the caller has no lists.
func shoppingListsDTO(lists []*model.ShoppingList) []*model.ShoppingList {
	out := make([]*model.ShoppingList, len(lists))
	for i, l := range lists {
		out[i] = shoppingListDTO(l)
	}
	return out
}
