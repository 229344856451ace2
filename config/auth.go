package config

import "strings"

// Storefront endpoints the browser calls directly; the optional API key auth
// never challenges these.
var publicAPIPrefixes = []string{
	"/api/cart",
	"/api/catalog/products",
	"/api/catalog/collections",
}

// IsPublicAPIPath reports whether an /api path is part of the public
// storefront surface.
func IsPublicAPIPath(path string) bool {
	for _, prefix := range publicAPIPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
