package service

import (
	"path/filepath"
	"testing"

	"github.com/tokoku/go-storefront-api/internal/model"
	"github.com/tokoku/go-storefront-api/internal/store"
)

// Services are tested against a real store on a temp dir; the store is cheap
// enough that mocking it would cost more than it saves.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "database.json"))
}

func seedProduct(t *testing.T, st *store.Store, p model.Product) {
	t.Helper()
	if err := st.Update(func(doc *model.Document) error {
		doc.Products = append([]model.Product{p}, doc.Products...)
		return nil
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func seedOrder(t *testing.T, st *store.Store, o model.Order) {
	t.Helper()
	if err := st.Update(func(doc *model.Document) error {
		doc.Orders = append([]model.Order{o}, doc.Orders...)
		return nil
	}); err != nil {
		t.Fatalf("seed order: %v", err)
	}
}
