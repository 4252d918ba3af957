package auth

import (
	"net/http"

	"github.com/shopapp/shopapp-backend/internal/api/respond"
	"github.com/shopapp/shopapp-backend/internal/model"
)

// CommandProfiles is the allowed-profile set shared by every shopping list
// command.
var CommandProfiles = []string{model.ProfileOperatives, model.ProfileAuthorities}

// RequireProfile is the command-level gate. It rejects unauthenticated
// callers with 401 and callers without any allowed profile with 403, before
// the command body runs and before any resource is loaded.
func RequireProfile(allowed []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := IdentityFromContext(r.Context())

			if !id.IsAuthenticated {
				respond.WriteUnauthenticated(w, "User is not authenticated")
				return
			}
			if !id.HasAnyProfile(allowed) {
				respond.WriteForbidden(w, "User does not have required profile")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsOwner reports the owner relation between a caller and a loaded list.
func IsOwner(l *model.ShoppingList, userID string) bool {
	return l.OwnerID == userID
}

// CanRead is the resource-level gate for get and shoppingItem/add:
// owner or any member entry.
func CanRead(l *model.ShoppingList, userID string) bool {
	return IsOwner(l, userID) || l.HasMember(userID)
}

// CanManage is the resource-level gate for update, delete and addMember:
// owner only.
func CanManage(l *model.ShoppingList, userID string) bool {
	return IsOwner(l, userID)
}
