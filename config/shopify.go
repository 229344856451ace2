package config

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// Placeholder credentials shipped in .env.example. When the deployment still
// carries these, every Shopify call is disabled and the site runs on the
// native catalog alone.
const (
	PlaceholderDomain = "your-store.myshopify.com"
	PlaceholderToken  = "your-storefront-access-token"
)

// ShopifyAPIVersion pins the Storefront API version (older stable version for
// better compatibility with the checkout mutations).
const ShopifyAPIVersion = "2023-01"

// ShopifyConfig holds the Storefront API credentials.
type ShopifyConfig struct {
	Domain string
	Token  string
}

// Configured reports whether real (non-placeholder) credentials are present.
func (c ShopifyConfig) Configured() bool {
	if c.Domain == "" || c.Token == "" {
		return false
	}
	if strings.Contains(c.Domain, "dummy-store") || strings.Contains(c.Token, "dummy-token") {
		return false
	}
	return c.Domain != PlaceholderDomain && c.Token != PlaceholderToken
}

// FallbackData is the static substitute shown when live Shopify data cannot
// be obtained.
type FallbackData struct {
	Name        string   `mapstructure:"name"`
	Price       string   `mapstructure:"price"`
	Image       string   `mapstructure:"image"`
	Description string   `mapstructure:"description"`
	Collection  string   `mapstructure:"collection"`
	Materials   []string `mapstructure:"materials"`
	Dimensions  string   `mapstructure:"dimensions"`
}

// ShopifyProductConfig describes one externally sourced product.
type ShopifyProductConfig struct {
	ID               string       `mapstructure:"id"`
	ShopifyProductID string       `mapstructure:"shopify_product_id"`
	ShopifyVariantID string       `mapstructure:"shopify_variant_id"`
	ShopifyHandle    string       `mapstructure:"shopify_handle"`
	Fallback         FallbackData `mapstructure:"fallback"`
}

// ShopifyCollectionConfig describes one externally sourced collection.
type ShopifyCollectionConfig struct {
	ID                  string `mapstructure:"id"`
	ShopifyCollectionID string `mapstructure:"shopify_collection_id"`
	ShopifyHandle       string `mapstructure:"shopify_handle"`
	MaxProducts         int    `mapstructure:"max_products"`
}

var (
	shopifyOnce    sync.Once
	shopifyCfg     ShopifyConfig
	productCfgs    []ShopifyProductConfig
	collectionCfgs []ShopifyCollectionConfig
)

// Single reusable fallback record shared by all configured products.
var defaultFallback = map[string]interface{}{
	"name":        "Premium Cat Furniture",
	"price":       "Price unavailable",
	"image":       "/images/products/placeholder.webp",
	"description": "Product information is currently unavailable. Please check back later or contact us for details.",
	"collection":  "Cat Furniture",
	"materials":   []string{"Premium Materials"},
	"dimensions":  "Dimensions available upon request",
}

// Raw catalog configuration. Kept as loosely typed maps so deployments can
// extend it without touching struct definitions; decoded with mapstructure
// in loadShopify.
func rawProductConfigs() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":                 "shopify-premium-cat-tower",
			"shopify_product_id": envOr("SHOPIFY_PRODUCT_ID_1", "gid://shopify/Product/example-product-id"),
			"shopify_variant_id": envOr("SHOPIFY_VARIANT_ID_1", "gid://shopify/ProductVariant/example-variant-id"),
			"shopify_handle":     "cat-step-wall-mounter-furniture",
			"fallback":           defaultFallback,
		},
		{
			"id":                 "shopify-premium-cat-tower2",
			"shopify_product_id": envOr("SHOPIFY_PRODUCT_ID_2", "gid://shopify/Product/example-product-id"),
			"shopify_variant_id": envOr("SHOPIFY_VARIANT_ID_2", "gid://shopify/ProductVariant/example-variant-id"),
			"shopify_handle":     "weaving-rattan-circular-cat-bed",
			"fallback":           defaultFallback,
		},
	}
}

func rawCollectionConfigs() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":                    "shopify-main-collection",
			"shopify_collection_id": envOr("SHOPIFY_COLLECTION_ID_1", "gid://shopify/Collection/example-collection-id"),
			"shopify_handle":        "cat-furniture",
			"max_products":          10,
		},
	}
}

func loadShopify() {
	shopifyOnce.Do(func() {
		shopifyCfg = ShopifyConfig{
			Domain: envOr("SHOPIFY_DOMAIN", PlaceholderDomain),
			Token:  envOr("SHOPIFY_STOREFRONT_TOKEN", PlaceholderToken),
		}
		for _, raw := range rawProductConfigs() {
			var cfg ShopifyProductConfig
			if err := mapstructure.Decode(raw, &cfg); err != nil {
				log.Printf("shopify config: skipping product entry: %v", err)
				continue
			}
			productCfgs = append(productCfgs, cfg)
		}
		for _, raw := range rawCollectionConfigs() {
			var cfg ShopifyCollectionConfig
			if err := mapstructure.Decode(raw, &cfg); err != nil {
				log.Printf("shopify config: skipping collection entry: %v", err)
				continue
			}
			collectionCfgs = append(collectionCfgs, cfg)
		}
	})
}

// Shopify returns the Storefront credentials.
func Shopify() ShopifyConfig {
	loadShopify()
	return shopifyCfg
}

// ShopifyProducts returns the configured external products, in configuration order.
func ShopifyProducts() []ShopifyProductConfig {
	loadShopify()
	return productCfgs
}

// ShopifyCollections returns the configured external collections, in configuration order.
func ShopifyCollections() []ShopifyCollectionConfig {
	loadShopify()
	return collectionCfgs
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
