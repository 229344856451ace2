package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductType discriminates the two product sources.
type ProductType string

const (
	// TypeNative marks products whose data lives entirely in this repo.
	TypeNative ProductType = "native"
	// TypeShopify marks products sourced from the Shopify storefront.
	TypeShopify ProductType = "shopify"
)

// Product is the unified product shape the catalog page renders. Native and
// Shopify products share the display fields; the Shopify* fields are set only
// for TypeShopify and are required to start a purchase against the platform.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       string      `json:"price"`
	Image       string      `json:"image"`
	Description string      `json:"description"`
	Collection  string      `json:"collection,omitempty"`
	Materials   []string    `json:"materials,omitempty"`
	Dimensions  string      `json:"dimensions,omitempty"`
	Type        ProductType `json:"type"`

	ShopifyProductID string `json:"shopifyProductId,omitempty"`
	ShopifyVariantID string `json:"shopifyVariantId,omitempty"`
	ShopifyHandle    string `json:"shopifyHandle,omitempty"`
}

func (p Product) IsShopify() bool { return p.Type == TypeShopify }
func (p Product) IsNative() bool  { return p.Type == TypeNative }

// ParsePrice extracts the numeric amount from a formatted price string like
// "$1,249". Unparseable strings (e.g. "Price unavailable") yield 0.
func ParsePrice(price string) float64 {
	s := strings.TrimSpace(price)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatPrice renders an amount the way the site displays it: whole dollar
// amounts without cents ("$589"), fractional ones with two decimals ("$589.50").
func FormatPrice(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("$%d", int64(amount))
	}
	return fmt.Sprintf("$%.2f", amount)
}
