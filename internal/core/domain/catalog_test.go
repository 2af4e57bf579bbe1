package domain

import "testing"

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Category: "Cloths", Name: "Blue T-Shirt", Price: 1999, Stock: 12},
		{ID: 5, Category: "Games", Name: "Board Game", Price: 3499, Stock: 8},
		{ID: 6, Category: "Games", Name: "Action Figure", Price: 1599, Stock: 15},
	}
}

func TestFilterProducts_CatchAllReturnsEverything(t *testing.T) {
	full := Catalog()

	got := FilterProducts(full, CategoryAll, "")

	if len(got) != len(full) {
		t.Fatalf("expected %d products, got %d", len(full), len(got))
	}
	for i := range full {
		if got[i].ID != full[i].ID {
			t.Errorf("position %d: expected id %d, got %d", i, full[i].ID, got[i].ID)
		}
	}
}

func TestFilterProducts_CategoryAndQueryCompose(t *testing.T) {
	got := FilterProducts(sampleProducts(), "Games", "action")

	if len(got) != 1 {
		t.Fatalf("expected 1 product, got %d", len(got))
	}
	if got[0].Name != "Action Figure" {
		t.Errorf("expected Action Figure, got %s", got[0].Name)
	}
}

func TestFilterProducts_CategoryOnly(t *testing.T) {
	got := FilterProducts(sampleProducts(), "Games", "")

	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	if got[0].ID != 5 || got[1].ID != 6 {
		t.Errorf("expected ids [5 6] in catalog order, got [%d %d]", got[0].ID, got[1].ID)
	}
}

func TestFilterProducts_QueryMatchesCategory(t *testing.T) {
	// "game" matches the Games category, so both Games products survive.
	got := FilterProducts(sampleProducts(), CategoryAll, "GAME")

	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
}

func TestFilterProducts_QueryCaseFolded(t *testing.T) {
	got := FilterProducts(sampleProducts(), CategoryAll, "bLuE t-sHiRt")

	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only product 1, got %v", got)
	}
}

func TestFilterProducts_NoMatchIsEmptyNotNilError(t *testing.T) {
	got := FilterProducts(sampleProducts(), "Games", "t-shirt")

	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no products, got %d", len(got))
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Name = "mutated"

	if Catalog()[0].Name == "mutated" {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestCategories_StartsWithCatchAll(t *testing.T) {
	cats := Categories()

	if len(cats) == 0 || cats[0] != CategoryAll {
		t.Fatalf("expected %q first, got %v", CategoryAll, cats)
	}
	seen := make(map[string]bool)
	for _, c := range cats {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
	}
}

func TestFindProduct(t *testing.T) {
	p, ok := FindProduct(5)
	if !ok || p.Name != "Board Game" {
		t.Errorf("expected Board Game, got %v (ok=%v)", p, ok)
	}

	if _, ok := FindProduct(999); ok {
		t.Error("expected lookup miss for unknown id")
	}
}
