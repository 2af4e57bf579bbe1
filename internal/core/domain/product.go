package domain

// Product is a catalog entry. Prices are in minor currency units.
type Product struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
}
