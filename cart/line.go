package cart

import (
	"strings"

	"github.com/aguilerap-jc/thecatmanor/catalog"
	"github.com/aguilerap-jc/thecatmanor/shopify"
)

// nativePrefix marks cart line ids that are managed locally. Everything else
// is a platform checkout line-item id.
const nativePrefix = "native-"

// Line is one cart line as the drawer renders it. Native lines carry the
// catalog product id behind the prefix; Shopify lines carry the checkout
// line-item id the platform assigned plus the variant they point at.
type Line struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Price    string              `json:"price"`
	Image    string              `json:"image,omitempty"`
	Quantity int                 `json:"quantity"`
	Type     catalog.ProductType `json:"type"`

	ProductID       string                   `json:"shopifyProductId,omitempty"`
	VariantID       string                   `json:"shopifyVariantId,omitempty"`
	VariantTitle    string                   `json:"variantTitle,omitempty"`
	SelectedOptions []shopify.SelectedOption `json:"selectedOptions,omitempty"`
}

// NativeLineID builds the cart line id for a native catalog product.
func NativeLineID(productID string) string {
	return nativePrefix + productID
}

// IsNativeLineID reports whether a cart line id belongs to a locally managed
// line.
func IsNativeLineID(id string) bool {
	return strings.HasPrefix(id, nativePrefix)
}

// NativeProductID recovers the catalog product id from a native line id.
func NativeProductID(lineID string) string {
	return strings.TrimPrefix(lineID, nativePrefix)
}

// LineTotal is the line's contribution to the subtotal.
func (l Line) LineTotal() float64 {
	return catalog.ParsePrice(l.Price) * float64(l.Quantity)
}

// nativeLine builds a local line from a catalog product with quantity 1.
func nativeLine(p catalog.Product) Line {
	return Line{
		ID:       NativeLineID(p.ID),
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
		Type:     catalog.TypeNative,
	}
}

// mergeNative adds a native line into items, bumping the quantity when the
// same product is already present. Returns the updated slice.
func mergeNative(items []Line, p catalog.Product) []Line {
	id := NativeLineID(p.ID)
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity++
			return items
		}
	}
	return append(items, nativeLine(p))
}

// onlyNative filters items down to the locally managed lines.
func onlyNative(items []Line) []Line {
	var out []Line
	for _, l := range items {
		if IsNativeLineID(l.ID) {
			out = append(out, l)
		}
	}
	return out
}

// linesFromCheckout maps the platform's line items into cart lines.
func linesFromCheckout(co *shopify.Checkout) []Line {
	if co == nil {
		return nil
	}
	out := make([]Line, 0, len(co.LineItems))
	for _, item := range co.LineItems {
		out = append(out, Line{
			ID:              item.ID,
			Name:            item.Title,
			Price:           catalog.FormatPrice(catalog.ParsePrice(item.Price)),
			Image:           shopify.NormalizeImageURL(item.ImageSrc),
			Quantity:        item.Quantity,
			Type:            catalog.TypeShopify,
			ProductID:       item.ProductID,
			VariantID:       item.VariantID,
			VariantTitle:    item.VariantTitle,
			SelectedOptions: item.SelectedOptions,
		})
	}
	return out
}

// subtotal sums the native lines locally and trusts the platform's subtotal
// for the checkout portion.
func subtotal(items []Line, co *shopify.Checkout) float64 {
	var total float64
	for _, l := range items {
		if IsNativeLineID(l.ID) {
			total += l.LineTotal()
		}
	}
	if co != nil {
		total += catalog.ParsePrice(co.Subtotal)
	}
	return total
}

// itemCount is the number of merged lines, independent of quantities.
func itemCount(items []Line) int {
	return len(items)
}
