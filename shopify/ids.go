package shopify

import (
	"regexp"
	"strings"
)

var (
	numericRe = regexp.MustCompile(`^\d+$`)
	gidRe     = regexp.MustCompile(`^gid://shopify/(Product|ProductVariant|Collection|Checkout)/(\d+)`)
)

// NumericID reduces a Shopify global id ("gid://shopify/Product/123") to its
// trailing numeric component. Already-numeric ids pass through; anything else
// is returned unchanged.
func NumericID(id string) string {
	if id == "" || numericRe.MatchString(id) {
		return id
	}
	if m := gidRe.FindStringSubmatch(id); m != nil {
		return m[2]
	}
	return id
}

// IsNumericID reports whether id is a bare numeric identifier.
func IsNumericID(id string) bool {
	return numericRe.MatchString(id)
}

// VariantGID normalizes a variant id into the global-id format the checkout
// mutations require.
func VariantGID(id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return "gid://shopify/ProductVariant/" + id
}

// ProductGID normalizes a product id into global-id format.
func ProductGID(id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return "gid://shopify/Product/" + id
}

// NormalizeImageURL repairs the malformed image URLs the CDN occasionally
// hands back: a collapsed protocol ("https:/cdn...") or a bare
// cdn.shopify.com reference without a scheme.
func NormalizeImageURL(url string) string {
	if strings.HasPrefix(url, "https:/") && !strings.HasPrefix(url, "https://") {
		return "https://" + strings.TrimPrefix(url, "https:/")
	}
	if strings.Contains(url, "cdn.shopify.com") && !strings.HasPrefix(url, "https://") {
		trimmed := strings.TrimPrefix(url, "http://")
		return "https://" + trimmed
	}
	return url
}
