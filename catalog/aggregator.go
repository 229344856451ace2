package catalog

import (
	"context"

	"github.com/aguilerap-jc/thecatmanor/config"
)

// ExternalSource resolves configured Shopify products and collections into the
// local Product shape. Implementations must degrade instead of failing: a
// product fetch that cannot succeed yields fallback data, a collection fetch
// yields an empty slice.
type ExternalSource interface {
	FetchProduct(ctx context.Context, cfg config.ShopifyProductConfig) Product
	FetchCollectionProducts(ctx context.Context, cfg config.ShopifyCollectionConfig) []Product
	ClearCache()
}

// Aggregator merges the native catalog with the configured external products
// into the single ordered list the catalog page renders.
type Aggregator struct {
	source      ExternalSource
	products    []config.ShopifyProductConfig
	collections []config.ShopifyCollectionConfig
}

// NewAggregator builds an Aggregator. source may be nil, in which case only
// the native catalog is served.
func NewAggregator(source ExternalSource, products []config.ShopifyProductConfig, collections []config.ShopifyCollectionConfig) *Aggregator {
	return &Aggregator{source: source, products: products, collections: collections}
}

// AllProducts returns native products (declaration order), then individually
// configured Shopify products (configuration order, fallback data per
// failure), then collection products (configuration order, failing collections
// contribute nothing). It never fails: callers can always render something.
func (a *Aggregator) AllProducts(ctx context.Context) []Product {
	out := NativeProducts()
	if a.source == nil {
		return out
	}
	for _, cfg := range a.products {
		out = append(out, a.source.FetchProduct(ctx, cfg))
	}
	for _, cfg := range a.collections {
		out = append(out, a.source.FetchCollectionProducts(ctx, cfg)...)
	}
	return out
}

// ByCollection filters the merged list by collection label. An empty name
// returns everything.
func (a *Aggregator) ByCollection(ctx context.Context, name string) []Product {
	all := a.AllProducts(ctx)
	if name == "" {
		return all
	}
	var out []Product
	for _, p := range all {
		if p.Collection == name {
			out = append(out, p)
		}
	}
	return out
}

// Collections returns the distinct collection labels of the merged list, in
// first-seen order, for the catalog filter bar.
func (a *Aggregator) Collections(ctx context.Context) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range a.AllProducts(ctx) {
		if p.Collection == "" || seen[p.Collection] {
			continue
		}
		seen[p.Collection] = true
		out = append(out, p.Collection)
	}
	return out
}

// Refresh drops the external caches and re-resolves the full list. Used by the
// catalog_refresh cron job so shoppers rarely hit a cold cache.
func (a *Aggregator) Refresh(ctx context.Context) int {
	if a.source != nil {
		a.source.ClearCache()
	}
	return len(a.AllProducts(ctx))
}
