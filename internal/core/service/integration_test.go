package service

import (
	"context"
	"path/filepath"
	"testing"

	"shopcart/internal/adapter/storage"
	"shopcart/internal/core/domain"
)

// Full flow over the real sqlite store: browse, fill the cart, log in, come
// back in a fresh process, log out.
func TestShoppingFlow_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shopcart.db")

	store, err := storage.NewSQLiteStore(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	cart := NewCartService(ctx, store)
	sessions := NewSessionService(ctx, store)

	games := domain.FilterProducts(domain.Catalog(), "Games", "")
	if len(games) == 0 {
		t.Fatal("expected Games products in the catalog")
	}
	for _, p := range games {
		if err := cart.AddItem(ctx, p); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
	}
	if _, err := sessions.Login(ctx, "a@b.com", "x"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	store.Close()

	// Next invocation: same file, fresh services.
	store, err = storage.NewSQLiteStore(ctx, path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer store.Close()

	cart = NewCartService(ctx, store)
	sessions = NewSessionService(ctx, store)

	if len(cart.Items()) != len(games) {
		t.Errorf("expected %d cart items after reload, got %d", len(games), len(cart.Items()))
	}
	sess, ok := sessions.Current()
	if !ok || sess.Email != "a@b.com" {
		t.Errorf("expected session for a@b.com after reload, got %v (ok=%v)", sess, ok)
	}

	if err := sessions.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	// Cart survives logout; the session key does not.
	if len(NewCartService(ctx, store).Items()) != len(games) {
		t.Error("cart did not survive logout")
	}
	if _, ok := NewSessionService(ctx, store).Current(); ok {
		t.Error("expected no session after logout")
	}
}
