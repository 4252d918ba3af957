package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/shopapp/shopapp-backend/internal/store"
	"github.com/shopapp/shopapp-backend/internal/store/storetest"
)

func makeSqliteStore(t *testing.T) store.Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "shopapp.db"))
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	return s
}

func TestSqliteStore_Compliance(t *testing.T) {
	storetest.Run(t, makeSqliteStore)
}
