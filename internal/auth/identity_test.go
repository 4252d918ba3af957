package auth

import (
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestIdentityFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		profiles string
		want     Identity
	}{
		{
			name: "no headers degrades to unauthenticated",
			want: Identity{},
		},
		{
			name:   "user id only",
			userID: "u1",
			want:   Identity{ID: "u1", IsAuthenticated: true},
		},
		{
			name:     "profiles trimmed and empties dropped",
			userID:   "u1",
			profiles: " Operatives , ,Authorities,",
			want:     Identity{ID: "u1", Profiles: []string{"Operatives", "Authorities"}, IsAuthenticated: true},
		},
		{
			name:     "profiles without identity stay unauthenticated",
			profiles: "Operatives",
			want:     Identity{Profiles: []string{"Operatives"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/shoppingList/list", nil)
			if tt.userID != "" {
				r.Header.Set(HeaderUserID, tt.userID)
			}
			if tt.profiles != "" {
				r.Header.Set(HeaderProfiles, tt.profiles)
			}
			got := IdentityFromRequest(r)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("IdentityFromRequest: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIdentityFromContext_Zero(t *testing.T) {
	r := httptest.NewRequest("POST", "/shoppingList/list", nil)
	id := IdentityFromContext(r.Context())
	if id.IsAuthenticated || id.ID != "" {
		t.Fatalf("want zero identity without middleware, got %+v", id)
	}
}
