package model

import "time"

// Role is the per-list relation between a user and a shopping list.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// Profiles recognised by the command gate. The set is fixed; this is not a
// pluggable policy engine.
const (
	ProfileOperatives  = "Operatives"
	ProfileAuthorities = "Authorities"
)

// Member ties a user to a list with a role.
type Member struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

// Item is a single entry on a shopping list. Items are created via
// shoppingItem/add only; nothing in the command surface mutates IsPurchased.
type Item struct {
	ItemID      string   `json:"id"`
	Name        string   `json:"name"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	IsPurchased bool     `json:"isPurchased"`
}

// ShoppingList is the aggregate root. Members and items live inside the
// list document and are deleted with it.
type ShoppingList struct {
	ListID       string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Members      []Member  `json:"members"`
	Items        []Item    `json:"items"`
	CreationTime time.Time `json:"createdAt"`
}

// HasMember reports whether userID appears in the member sequence,
// regardless of role.
func (l *ShoppingList) HasMember(userID string) bool {
	for _, m := range l.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// ListQuery captures the filters used by shoppingList/list.
type ListQuery struct {
	UserID    string
	OwnedOnly bool
}
