package domain

// CartItem is a snapshot of a product at the time it was first added to the
// cart, plus the selected quantity. Snapshot fields do not track later
// catalog changes.
type CartItem struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Quantity int    `json:"quantity"`
}

// NewCartItem snapshots p with quantity 1.
func NewCartItem(p Product) CartItem {
	return CartItem{
		ID:       p.ID,
		Category: p.Category,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		Quantity: 1,
	}
}

// Subtotal is price times quantity in minor units.
func (c CartItem) Subtotal() int64 {
	return c.Price * int64(c.Quantity)
}
