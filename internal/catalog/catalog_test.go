package catalog

import (
	"errors"
	"testing"

	"github.com/urbanova/storefront/internal/core/domain"
)

func TestCatalog_SeedLookup(t *testing.T) {
	c := New(nil)

	p, err := c.Product(1)
	if err != nil {
		t.Fatalf("Product failed: %v", err)
	}
	if p.Title != "Classic Leather Backpack" || p.Price != 129.99 {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestCatalog_UnknownProduct(t *testing.T) {
	c := New(nil)

	if _, err := c.Product(999); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalog_CategoryFilter(t *testing.T) {
	c := New(nil)

	accessories := c.Products("Accessories")
	if len(accessories) != 3 {
		t.Fatalf("expected 3 accessories, got %d", len(accessories))
	}
	for _, p := range accessories {
		if p.Category != "Accessories" {
			t.Fatalf("filter leaked category %q", p.Category)
		}
	}

	all := c.Products("")
	if len(all) != 8 {
		t.Fatalf("expected 8 products, got %d", len(all))
	}
}

func TestCatalog_Categories(t *testing.T) {
	c := New(nil)

	got := c.Categories()
	want := []string{"Bags", "Accessories", "Electronics", "Clothing", "Kitchen", "Home"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCatalog_ProductsReturnsCopy(t *testing.T) {
	c := New(nil)

	all := c.Products("")
	all[0].Title = "mutated"

	again, _ := c.Product(all[0].ID)
	if again.Title == "mutated" {
		t.Fatalf("Products must not expose internal state")
	}
}
