package session

import (
	"errors"
	"testing"

	"shopbot/logic"
)

func TestStore_SessionLifecycle(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess, err := store.Create()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected a session id")
	}
	if sess.State == nil || !sess.State.IsEmpty() {
		t.Fatal("expected a fresh empty cart")
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("expected session %q, got %q", sess.ID, got.ID)
	}

	got.History = append(got.History, Exchange{User: "hello", Bot: "hi"})
	if err := store.Save(got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again.History) != 1 || again.History[0].User != "hello" {
		t.Errorf("expected saved history, got %+v", again.History)
	}
}

func TestStore_GetUnknownSession(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = store.Get("no-such-session")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStore_OrderRecords(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := &logic.Order{
		ID:         "order-1",
		Lines:      []logic.LineItem{{Product: "Widget", Quantity: 2, LineTotal: 20}},
		GrandTotal: 20,
	}
	rec, err := store.PutOrder(order, []byte("%PDF-stub"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "order-1" {
		t.Errorf("expected record keyed by order id, got %q", rec.ID)
	}

	got, err := store.GetOrder("order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got.PDF) != "%PDF-stub" {
		t.Error("expected stored document bytes")
	}
	if got.Order.GrandTotal != 20 {
		t.Errorf("expected grand total 20, got %d", got.Order.GrandTotal)
	}

	_, err = store.GetOrder("no-such-order")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}
