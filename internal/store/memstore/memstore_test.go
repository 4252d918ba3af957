package memstore

import (
	"testing"

	"github.com/shopapp/shopapp-backend/internal/store"
	"github.com/shopapp/shopapp-backend/internal/store/storetest"
)

func TestMemStore_Compliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return New() })
}
