package service

import (
	"context"
	"encoding/json"
	"fmt"

	"shopcart/internal/core/domain"
	"shopcart/internal/port"
)

// CartKey is the fixed storage key for the persisted cart.
const CartKey = "shopcart:cart"

// CartService owns the cart state. Each item appears at most once, keyed by
// product ID, in insertion order; every mutation persists the full cart
// before returning.
type CartService struct {
	store port.KeyValueStore
	items []domain.CartItem
}

// NewCartService loads the persisted cart from store. A missing or
// undecodable blob yields an empty cart.
func NewCartService(ctx context.Context, store port.KeyValueStore) *CartService {
	s := &CartService{store: store}
	if raw, err := store.Load(ctx, CartKey); err == nil {
		s.items = decodeCart([]byte(raw))
	}
	return s
}

// decodeCart parses a persisted cart blob. Malformed input falls back to an
// empty cart; decode failures never cross the storage boundary.
func decodeCart(blob []byte) []domain.CartItem {
	var items []domain.CartItem
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil
	}
	return items
}

// AddItem puts one unit of p in the cart: an existing entry has its quantity
// incremented, otherwise a snapshot of p is appended with quantity 1. Adding
// past the product's stock is permitted; there is no inventory system.
func (s *CartService) AddItem(ctx context.Context, p domain.Product) error {
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			return s.persist(ctx)
		}
	}
	s.items = append(s.items, domain.NewCartItem(p))
	return s.persist(ctx)
}

// RemoveItem deletes the entry with the given product ID. Removing an absent
// ID is a no-op, but the cart is still persisted.
func (s *CartService) RemoveItem(ctx context.Context, id int) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return s.persist(ctx)
}

// SetQuantity sets the entry's quantity to exactly quantity. A value of zero
// or less removes the entry instead; quantities below one are never stored.
// Setting an absent ID is a no-op. The entry keeps its position.
func (s *CartService) SetQuantity(ctx context.Context, id, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, id)
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.persist(ctx)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	s.items = nil
	return s.persist(ctx)
}

// Items returns a copy of the cart in insertion order.
func (s *CartService) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is the sum of price times quantity over all items, zero when empty.
func (s *CartService) Total() int64 {
	var total int64
	for _, it := range s.items {
		total += it.Subtotal()
	}
	return total
}

// Serialize encodes the cart as a JSON array, the format used for both
// persistence and export. An empty cart encodes as [].
func (s *CartService) Serialize() ([]byte, error) {
	items := s.items
	if items == nil {
		items = []domain.CartItem{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}
	return blob, nil
}

// Restore replaces the cart with the decoded blob and persists the result.
// Malformed input yields an empty cart, never an error.
func (s *CartService) Restore(ctx context.Context, blob []byte) error {
	s.items = decodeCart(blob)
	return s.persist(ctx)
}

func (s *CartService) persist(ctx context.Context) error {
	blob, err := s.Serialize()
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, CartKey, string(blob)); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
