package shopify

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/aguilerap-jc/thecatmanor/catalog"
	"github.com/aguilerap-jc/thecatmanor/config"
	"github.com/aguilerap-jc/thecatmanor/core/cache"
)

// Cache layout. Successful lookups are cached; failures are not, so the next
// page view retries the platform.
const (
	productCacheTTL  = 300
	tagProducts      = "shopify-products"
	tagCollections   = "shopify-collections"
	productKeyPrefix = "shopify:product:"
	collectionKeyPx  = "shopify:collection:"
)

// CatalogAPI is the slice of Client the adapter reads the catalog through.
type CatalogAPI interface {
	Products(ctx context.Context, first int) ([]Product, error)
	ProductByID(ctx context.Context, gid string) (*Product, error)
	CollectionProducts(ctx context.Context, collectionGID string, first int) ([]Product, error)
}

// Adapter resolves configured Shopify products into the local catalog shape.
// It implements catalog.ExternalSource: product failures degrade to the
// configured fallback, collection failures degrade to an empty slice.
type Adapter struct {
	client CatalogAPI
	store  *cache.Cache
}

func NewAdapter(client CatalogAPI, store *cache.Cache) *Adapter {
	return &Adapter{client: client, store: store}
}

// FetchProduct resolves one configured product. Resolution order: cache, then
// a handle match over the store catalog, then a direct id fetch, then the
// configured fallback. It never returns an error.
func (a *Adapter) FetchProduct(ctx context.Context, cfg config.ShopifyProductConfig) catalog.Product {
	key := productKeyPrefix + cfg.ID
	var cached catalog.Product
	if a.store != nil && a.store.GetInto(key, &cached) {
		return cached
	}

	live := a.resolveLive(ctx, cfg)
	if live == nil {
		return fallbackProduct(cfg)
	}
	p := a.localize(*live, cfg)
	if a.store != nil {
		a.store.Set(key, p, productCacheTTL, []string{tagProducts})
	}
	return p
}

func (a *Adapter) resolveLive(ctx context.Context, cfg config.ShopifyProductConfig) *Product {
	if cfg.ShopifyHandle != "" {
		products, err := a.client.Products(ctx, 20)
		if err != nil {
			log.Printf("shopify: product list for %s: %v", cfg.ID, err)
		} else {
			for i := range products {
				if products[i].Handle == cfg.ShopifyHandle {
					return &products[i]
				}
			}
		}
	}
	gid := ProductGID(cfg.ShopifyProductID)
	if !IsNumericID(NumericID(gid)) {
		return nil
	}
	p, err := a.client.ProductByID(ctx, gid)
	if err != nil {
		log.Printf("shopify: product %s: %v", cfg.ID, err)
		return nil
	}
	return p
}

// FetchCollectionProducts resolves the members of one configured collection.
// Any failure yields an empty slice so the catalog page renders without the
// collection rather than erroring.
func (a *Adapter) FetchCollectionProducts(ctx context.Context, cfg config.ShopifyCollectionConfig) []catalog.Product {
	key := collectionKeyPx + cfg.ID
	var cached []catalog.Product
	if a.store != nil && a.store.GetInto(key, &cached) {
		return cached
	}

	gid := cfg.ShopifyCollectionID
	if !strings.HasPrefix(gid, "gid://shopify/Collection/") {
		gid = "gid://shopify/Collection/" + gid
	}
	if !IsNumericID(NumericID(gid)) {
		return nil
	}
	max := cfg.MaxProducts
	if max <= 0 {
		max = 10
	}
	products, err := a.client.CollectionProducts(ctx, gid, max)
	if err != nil {
		log.Printf("shopify: collection %s: %v", cfg.ID, err)
		return nil
	}
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		member := config.ShopifyProductConfig{ID: cfg.ID + "-" + NumericID(p.ID)}
		out = append(out, a.localize(p, member))
	}
	if a.store != nil {
		a.store.Set(key, out, productCacheTTL, []string{tagCollections})
	}
	return out
}

// ClearCache drops all cached Shopify data so the next fetch hits the
// platform again.
func (a *Adapter) ClearCache() {
	if a.store == nil {
		return
	}
	a.store.DeleteByTag(tagProducts)
	a.store.DeleteByTag(tagCollections)
}

// localize maps a platform product into the local catalog shape, filling
// display fields the platform does not model from description and tag
// heuristics.
func (a *Adapter) localize(p Product, cfg config.ShopifyProductConfig) catalog.Product {
	variant := pickVariant(p.Variants, cfg.ShopifyVariantID)

	out := catalog.Product{
		ID:               cfg.ID,
		Name:             p.Title,
		Description:      p.Description,
		Collection:       extractCollection(p.Tags, p.ProductType),
		Materials:        extractMaterials(p.Description, p.Tags),
		Dimensions:       extractDimensions(p.Description, p.Variants),
		Type:             catalog.TypeShopify,
		ShopifyProductID: p.ID,
		ShopifyHandle:    p.Handle,
	}
	if variant != nil {
		out.Price = catalog.FormatPrice(catalog.ParsePrice(variant.Price))
		out.ShopifyVariantID = variant.ID
	} else {
		out.Price = cfg.Fallback.Price
	}
	if len(p.Images) > 0 {
		out.Image = NormalizeImageURL(p.Images[0].Src)
	} else {
		out.Image = cfg.Fallback.Image
	}
	if out.Description == "" {
		out.Description = cfg.Fallback.Description
	}
	if out.Collection == "" {
		out.Collection = cfg.Fallback.Collection
	}
	if len(out.Materials) == 0 {
		out.Materials = cfg.Fallback.Materials
	}
	if out.Dimensions == "" {
		out.Dimensions = cfg.Fallback.Dimensions
	}
	return out
}

// fallbackProduct renders the configured static substitute. The Shopify ids
// are carried over so the cart can still attempt a purchase once the platform
// recovers.
func fallbackProduct(cfg config.ShopifyProductConfig) catalog.Product {
	return catalog.Product{
		ID:               cfg.ID,
		Name:             cfg.Fallback.Name,
		Price:            cfg.Fallback.Price,
		Image:            cfg.Fallback.Image,
		Description:      cfg.Fallback.Description,
		Collection:       cfg.Fallback.Collection,
		Materials:        cfg.Fallback.Materials,
		Dimensions:       cfg.Fallback.Dimensions,
		Type:             catalog.TypeShopify,
		ShopifyProductID: cfg.ShopifyProductID,
		ShopifyVariantID: cfg.ShopifyVariantID,
		ShopifyHandle:    cfg.ShopifyHandle,
	}
}

// pickVariant prefers the configured variant, falling back to the first one.
func pickVariant(variants []Variant, configuredID string) *Variant {
	if len(variants) == 0 {
		return nil
	}
	want := NumericID(VariantGID(configuredID))
	if want != "" {
		for i := range variants {
			if NumericID(variants[i].ID) == want {
				return &variants[i]
			}
		}
	}
	return &variants[0]
}

var materialKeywords = []string{
	"oak", "walnut", "bamboo", "teak", "ash", "pine", "rattan", "wood",
	"steel", "metal", "sisal", "wool", "cotton", "linen", "fabric", "felt",
}

// extractMaterials derives a materials list from "material:" tags and tags
// containing a material word, then from material words appearing in the
// description.
func extractMaterials(description string, tags []string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(m string) {
		m = strings.TrimSpace(m)
		if m == "" {
			return
		}
		key := strings.ToLower(m)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, titleCase(key))
	}
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		if rest, ok := strings.CutPrefix(lower, "material:"); ok {
			add(rest)
			continue
		}
		for _, kw := range materialKeywords {
			if strings.Contains(lower, kw) {
				add(tag)
				break
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	lower := strings.ToLower(description)
	for _, kw := range materialKeywords {
		if strings.Contains(lower, kw) {
			add(kw)
		}
	}
	return out
}

var dimensionsRe = regexp.MustCompile(`\d+(?:\.\d+)?["']?\s*[×x]\s*\d+(?:\.\d+)?["']?\s*[×x]\s*\d+(?:\.\d+)?["']?`)

// extractDimensions finds a WxDxH measurement in the description, then in the
// variant titles.
func extractDimensions(description string, variants []Variant) string {
	if m := dimensionsRe.FindString(description); m != "" {
		return m
	}
	for _, v := range variants {
		if m := dimensionsRe.FindString(v.Title); m != "" {
			return m
		}
	}
	return ""
}

var knownCollections = map[string]bool{
	"signature":  true,
	"essential":  true,
	"eco":        true,
	"premium":    true,
	"luxury":     true,
	"modern":     true,
	"minimalist": true,
}

// extractCollection derives a collection label from an explicit
// "collection:" tag, then a recognized collection tag, then the product type.
func extractCollection(tags []string, productType string) string {
	for _, tag := range tags {
		if rest, ok := strings.CutPrefix(strings.ToLower(tag), "collection:"); ok {
			return titleCase(strings.TrimSpace(rest))
		}
	}
	for _, tag := range tags {
		if knownCollections[strings.ToLower(strings.TrimSpace(tag))] {
			return titleCase(strings.TrimSpace(tag))
		}
	}
	return strings.TrimSpace(productType)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
