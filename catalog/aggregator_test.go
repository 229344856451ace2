package catalog

import (
	"context"
	"testing"

	"github.com/aguilerap-jc/thecatmanor/config"
)

type stubSource struct {
	product       Product
	collection    []Product
	clearedCaches int
}

func (s *stubSource) FetchProduct(ctx context.Context, cfg config.ShopifyProductConfig) Product {
	p := s.product
	p.ID = cfg.ID
	return p
}

func (s *stubSource) FetchCollectionProducts(ctx context.Context, cfg config.ShopifyCollectionConfig) []Product {
	return s.collection
}

func (s *stubSource) ClearCache() { s.clearedCaches++ }

func TestAllProductsOrdering(t *testing.T) {
	source := &stubSource{
		product: Product{Name: "External Tower", Price: "$129", Type: TypeShopify, Collection: "Cat Furniture"},
		collection: []Product{
			{ID: "col-1", Name: "Collection Piece", Price: "$59", Type: TypeShopify},
		},
	}
	agg := NewAggregator(source,
		[]config.ShopifyProductConfig{{ID: "shopify-tower"}},
		[]config.ShopifyCollectionConfig{{ID: "main"}},
	)

	all := agg.AllProducts(context.Background())
	if len(all) != 8 {
		t.Fatalf("products = %d, want 6 native + 1 configured + 1 collection", len(all))
	}
	if !all[0].IsNative() || all[0].ID != "modular-perch-oak" {
		t.Errorf("native products must come first, got %q", all[0].ID)
	}
	if all[6].ID != "shopify-tower" {
		t.Errorf("configured product out of order: %q", all[6].ID)
	}
	if all[7].ID != "col-1" {
		t.Errorf("collection products must come last: %q", all[7].ID)
	}
}

func TestNilSourceServesNativeOnly(t *testing.T) {
	agg := NewAggregator(nil,
		[]config.ShopifyProductConfig{{ID: "shopify-tower"}},
		nil,
	)
	if got := len(agg.AllProducts(context.Background())); got != 6 {
		t.Errorf("products = %d, want native catalog only", got)
	}
}

func TestCollectionsFirstSeenOrder(t *testing.T) {
	source := &stubSource{
		product: Product{Name: "External", Price: "$1", Type: TypeShopify, Collection: "Cat Furniture"},
	}
	agg := NewAggregator(source, []config.ShopifyProductConfig{{ID: "x"}}, nil)

	got := agg.Collections(context.Background())
	want := []string{"Signature", "Essential", "Eco", "Cat Furniture"}
	if len(got) != len(want) {
		t.Fatalf("collections = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collections[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRefreshClearsCaches(t *testing.T) {
	source := &stubSource{product: Product{Price: "$1", Type: TypeShopify}}
	agg := NewAggregator(source, []config.ShopifyProductConfig{{ID: "x"}}, nil)

	n := agg.Refresh(context.Background())
	if source.clearedCaches != 1 {
		t.Errorf("ClearCache calls = %d", source.clearedCaches)
	}
	if n != 7 {
		t.Errorf("refreshed count = %d", n)
	}
}
