package domain

import "strings"

// CategoryAll is the catch-all filter category; it disables category
// filtering entirely.
const CategoryAll = "All"

var catalog = []Product{
	{ID: 1, Category: "Cloths", Name: "Blue T-Shirt", Price: 1999, Stock: 12},
	{ID: 2, Category: "Cloths", Name: "Denim Jacket", Price: 4999, Stock: 5},
	{ID: 3, Category: "Electronics", Name: "Wireless Mouse", Price: 2499, Stock: 20},
	{ID: 4, Category: "Electronics", Name: "USB-C Cable", Price: 899, Stock: 50},
	{ID: 5, Category: "Games", Name: "Board Game", Price: 3499, Stock: 8},
	{ID: 6, Category: "Games", Name: "Action Figure", Price: 1599, Stock: 15},
}

// Catalog returns the fixed product list. Callers get a copy; catalog
// products are immutable.
func Catalog() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}

// Categories returns CategoryAll followed by the distinct catalog categories
// in catalog order.
func Categories() []string {
	out := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, p := range catalog {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// FilterProducts returns the products matching category and query, preserving
// input order. CategoryAll skips category filtering and an empty query skips
// text filtering; the query matches case-insensitively against product name
// or category. No match yields an empty slice.
func FilterProducts(products []Product, category, query string) []Product {
	q := strings.ToLower(query)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FindProduct looks up a catalog product by ID.
func FindProduct(id int) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
