package shopify

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/aguilerap-jc/thecatmanor/config"
	"github.com/aguilerap-jc/thecatmanor/core/cache"
)

type stubCatalog struct {
	products     []Product
	productsErr  error
	byID         map[string]*Product
	collection   []Product
	collectionEr error

	listCalls       int
	byIDCalls       int
	collectionCalls int
}

func (s *stubCatalog) Products(ctx context.Context, first int) ([]Product, error) {
	s.listCalls++
	return s.products, s.productsErr
}

func (s *stubCatalog) ProductByID(ctx context.Context, gid string) (*Product, error) {
	s.byIDCalls++
	if p, ok := s.byID[gid]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (s *stubCatalog) CollectionProducts(ctx context.Context, gid string, first int) ([]Product, error) {
	s.collectionCalls++
	return s.collection, s.collectionEr
}

func towerProduct() Product {
	return Product{
		ID:          "gid://shopify/Product/111",
		Title:       "Premium Cat Tower",
		Handle:      "cat-step-wall-mounter-furniture",
		Description: "Handcrafted oak tower, 24\" x 18\" x 62\" of climbing space.",
		ProductType: "Cat Furniture",
		Tags:        []string{"premium"},
		Images:      []Image{{Src: "https:/cdn.shopify.com/s/files/tower.webp"}},
		Variants: []Variant{
			{ID: "gid://shopify/ProductVariant/222", Title: "Default", Price: "589.0", Available: true},
		},
	}
}

func towerConfig() config.ShopifyProductConfig {
	return config.ShopifyProductConfig{
		ID:               "shopify-premium-cat-tower",
		ShopifyProductID: "gid://shopify/Product/111",
		ShopifyVariantID: "gid://shopify/ProductVariant/222",
		ShopifyHandle:    "cat-step-wall-mounter-furniture",
		Fallback: config.FallbackData{
			Name:        "Premium Cat Furniture",
			Price:       "Price unavailable",
			Image:       "/images/products/placeholder.webp",
			Description: "Product information is currently unavailable.",
			Collection:  "Cat Furniture",
			Materials:   []string{"Premium Materials"},
			Dimensions:  "Dimensions available upon request",
		},
	}
}

func TestFetchProductByHandle(t *testing.T) {
	stub := &stubCatalog{products: []Product{towerProduct()}}
	a := NewAdapter(stub, cache.New())

	p := a.FetchProduct(context.Background(), towerConfig())

	if p.Name != "Premium Cat Tower" {
		t.Fatalf("expected live title, got %q", p.Name)
	}
	if p.Price != "$589" {
		t.Errorf("expected formatted price $589, got %q", p.Price)
	}
	if p.Image != "https://cdn.shopify.com/s/files/tower.webp" {
		t.Errorf("image URL not normalized: %q", p.Image)
	}
	if p.ShopifyVariantID != "gid://shopify/ProductVariant/222" {
		t.Errorf("variant id = %q", p.ShopifyVariantID)
	}
	if p.Collection != "Premium" {
		t.Errorf("collection = %q, expected Premium from tag", p.Collection)
	}
	if stub.byIDCalls != 0 {
		t.Errorf("id fetch should not run when the handle matches")
	}
}

func TestFetchProductFallsBackToIDFetch(t *testing.T) {
	tower := towerProduct()
	stub := &stubCatalog{
		products: nil, // handle not present in the listing
		byID:     map[string]*Product{"gid://shopify/Product/111": &tower},
	}
	a := NewAdapter(stub, cache.New())

	p := a.FetchProduct(context.Background(), towerConfig())

	if stub.byIDCalls != 1 {
		t.Fatalf("expected one id fetch, got %d", stub.byIDCalls)
	}
	if p.Name != "Premium Cat Tower" {
		t.Errorf("expected live title, got %q", p.Name)
	}
}

func TestFetchProductFallbackSubstitution(t *testing.T) {
	stub := &stubCatalog{productsErr: errors.New("boom")}
	a := NewAdapter(stub, cache.New())
	cfg := towerConfig()

	p := a.FetchProduct(context.Background(), cfg)

	if p.Name != cfg.Fallback.Name {
		t.Errorf("name = %q, expected fallback", p.Name)
	}
	if p.Price != "Price unavailable" {
		t.Errorf("price = %q", p.Price)
	}
	if !reflect.DeepEqual(p.Materials, cfg.Fallback.Materials) {
		t.Errorf("materials = %v", p.Materials)
	}
	// The ids survive so a later add-to-cart can still be attempted.
	if p.ShopifyVariantID != cfg.ShopifyVariantID {
		t.Errorf("variant id lost in fallback: %q", p.ShopifyVariantID)
	}
	if p.Type != "shopify" {
		t.Errorf("type = %q", p.Type)
	}
}

func TestFetchProductPlaceholderIDSkipsIDFetch(t *testing.T) {
	stub := &stubCatalog{}
	a := NewAdapter(stub, cache.New())
	cfg := towerConfig()
	cfg.ShopifyHandle = ""
	cfg.ShopifyProductID = "gid://shopify/Product/example-product-id"

	p := a.FetchProduct(context.Background(), cfg)

	if stub.byIDCalls != 0 {
		t.Errorf("placeholder id must not be fetched")
	}
	if p.Name != cfg.Fallback.Name {
		t.Errorf("expected fallback, got %q", p.Name)
	}
}

func TestFetchProductCaching(t *testing.T) {
	stub := &stubCatalog{products: []Product{towerProduct()}}
	a := NewAdapter(stub, cache.New())
	cfg := towerConfig()
	ctx := context.Background()

	first := a.FetchProduct(ctx, cfg)
	second := a.FetchProduct(ctx, cfg)

	if stub.listCalls != 1 {
		t.Fatalf("expected one platform call, got %d", stub.listCalls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached product differs from live one")
	}

	a.ClearCache()
	a.FetchProduct(ctx, cfg)
	if stub.listCalls != 2 {
		t.Errorf("expected refetch after ClearCache, got %d calls", stub.listCalls)
	}
}

func TestFetchProductFailureNotCached(t *testing.T) {
	stub := &stubCatalog{productsErr: errors.New("boom")}
	a := NewAdapter(stub, cache.New())
	cfg := towerConfig()
	cfg.ShopifyProductID = "gid://shopify/Product/example-product-id"
	ctx := context.Background()

	a.FetchProduct(ctx, cfg)
	stub.productsErr = nil
	stub.products = []Product{towerProduct()}

	p := a.FetchProduct(ctx, cfg)
	if p.Name != "Premium Cat Tower" {
		t.Errorf("fallback was cached; expected live data on retry, got %q", p.Name)
	}
}

func TestFetchCollectionProducts(t *testing.T) {
	stub := &stubCatalog{collection: []Product{towerProduct()}}
	a := NewAdapter(stub, cache.New())
	cfg := config.ShopifyCollectionConfig{
		ID:                  "shopify-main-collection",
		ShopifyCollectionID: "gid://shopify/Collection/333",
		MaxProducts:         10,
	}

	got := a.FetchCollectionProducts(context.Background(), cfg)

	if len(got) != 1 {
		t.Fatalf("expected 1 product, got %d", len(got))
	}
	if got[0].ID != "shopify-main-collection-111" {
		t.Errorf("member id = %q", got[0].ID)
	}
}

func TestFetchCollectionProductsFailureYieldsEmpty(t *testing.T) {
	stub := &stubCatalog{collectionEr: errors.New("boom")}
	a := NewAdapter(stub, cache.New())
	cfg := config.ShopifyCollectionConfig{
		ID:                  "shopify-main-collection",
		ShopifyCollectionID: "gid://shopify/Collection/333",
	}

	if got := a.FetchCollectionProducts(context.Background(), cfg); len(got) != 0 {
		t.Errorf("expected empty slice on failure, got %d products", len(got))
	}
}

func TestExtractMaterials(t *testing.T) {
	got := extractMaterials("Solid oak frame with wool cushions.", nil)
	if !reflect.DeepEqual(got, []string{"Oak", "Wool"}) {
		t.Errorf("materials = %v", got)
	}

	got = extractMaterials("whatever", []string{"material:Bamboo", "premium"})
	if !reflect.DeepEqual(got, []string{"Bamboo"}) {
		t.Errorf("tagged materials = %v", got)
	}

	// A bare vocabulary tag counts even when the description names nothing.
	got = extractMaterials("A premium climbing structure for discerning cats.",
		[]string{"oak", "premium"})
	if !reflect.DeepEqual(got, []string{"Oak"}) {
		t.Errorf("vocabulary tag materials = %v", got)
	}

	// Tags containing a vocabulary word are kept whole, as tagged.
	got = extractMaterials("", []string{"reclaimed-teak"})
	if !reflect.DeepEqual(got, []string{"Reclaimed-teak"}) {
		t.Errorf("compound tag materials = %v", got)
	}
}

func TestExtractDimensions(t *testing.T) {
	if got := extractDimensions(`Measures 24" x 18" x 62" overall.`, nil); got != `24" x 18" x 62"` {
		t.Errorf("dimensions = %q", got)
	}
	variants := []Variant{{Title: "Large / 30 × 20 × 70"}}
	if got := extractDimensions("no sizes here", variants); got != "30 × 20 × 70" {
		t.Errorf("variant dimensions = %q", got)
	}
	if got := extractDimensions("nothing", nil); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestExtractCollection(t *testing.T) {
	if got := extractCollection([]string{"collection:signature series"}, "Furniture"); got != "Signature Series" {
		t.Errorf("explicit tag: %q", got)
	}
	if got := extractCollection([]string{"eco"}, "Furniture"); got != "Eco" {
		t.Errorf("known tag: %q", got)
	}
	if got := extractCollection([]string{"cats"}, "Cat Furniture"); got != "Cat Furniture" {
		t.Errorf("product type fallback: %q", got)
	}
}

func TestNumericID(t *testing.T) {
	if got := NumericID("gid://shopify/Product/12345"); got != "12345" {
		t.Errorf("gid: %q", got)
	}
	if got := NumericID("12345"); got != "12345" {
		t.Errorf("numeric passthrough: %q", got)
	}
	if got := NumericID("gid://shopify/Product/example-product-id"); IsNumericID(got) {
		t.Errorf("placeholder must not reduce to numeric: %q", got)
	}
}
