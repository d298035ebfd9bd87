package logic

import (
	"errors"
	"testing"
)

// stubRenderer counts calls and can be forced to fail.
type stubRenderer struct {
	calls int
	fail  error
}

func (r *stubRenderer) Render(_ *Order) ([]byte, error) {
	r.calls++
	if r.fail != nil {
		return nil, r.fail
	}
	return []byte("%PDF-stub"), nil
}

func newTestLogic(t *testing.T, catalog *Catalog) (*DefaultShopLogic, *stubRenderer) {
	t.Helper()
	renderer := &stubRenderer{}
	return NewShopLogic(catalog, renderer, nil), renderer
}

func widgetCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]Product{{Name: "Widget", UnitPrice: 10}})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

func expectShopError(t *testing.T, err error, code StatusCode) *ShopError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %s, got nil", code)
	}
	var shopErr *ShopError
	if !errors.As(err, &shopErr) {
		t.Fatalf("expected ShopError, got %T: %v", err, err)
	}
	if shopErr.Code != code {
		t.Fatalf("expected status %s, got %s", code, shopErr.Code)
	}
	return shopErr
}
