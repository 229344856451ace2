package shopify

// Wire-adjacent types returned by the Storefront API client, already flattened
// out of GraphQL edges/nodes. The adapter turns these into catalog.Product.

type Image struct {
	Src     string `json:"src"`
	AltText string `json:"altText,omitempty"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Variant struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Price           string           `json:"price"`
	CompareAtPrice  string           `json:"compareAtPrice,omitempty"`
	Available       bool             `json:"available"`
	SelectedOptions []SelectedOption `json:"selectedOptions,omitempty"`
}

type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Handle      string    `json:"handle"`
	Description string    `json:"description"`
	ProductType string    `json:"productType,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Images      []Image   `json:"images,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
}

// CheckoutLine is one line item of a checkout session.
type CheckoutLine struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Quantity        int              `json:"quantity"`
	VariantID       string           `json:"variantId"`
	VariantTitle    string           `json:"variantTitle,omitempty"`
	Price           string           `json:"price"`
	ImageSrc        string           `json:"imageSrc,omitempty"`
	ProductID       string           `json:"productId"`
	SelectedOptions []SelectedOption `json:"selectedOptions,omitempty"`
}

// Checkout is the platform's server-side session accumulating line items
// toward a purchase. CompletedAt is empty while the checkout is still open.
type Checkout struct {
	ID           string         `json:"id"`
	WebURL       string         `json:"webUrl"`
	CompletedAt  string         `json:"completedAt,omitempty"`
	Subtotal     string         `json:"subtotal"`
	CurrencyCode string         `json:"currencyCode,omitempty"`
	LineItems    []CheckoutLine `json:"lineItems"`
}

// Completed reports whether the shopper already paid for this checkout.
func (c *Checkout) Completed() bool {
	return c != nil && c.CompletedAt != ""
}
