package models

import "github.com/aguilerap-jc/thecatmanor/catalog"

// Product is the GraphQL view of a catalog product. Plain string fields so
// graphql-go field resolvers match the schema directly.
type Product struct {
	ID               string
	Name             string
	Price            string
	Image            string
	Description      string
	Collection       string
	Materials        []string
	Dimensions       string
	Type             string
	ShopifyProductID string
	ShopifyVariantID string
	ShopifyHandle    string
}

// FromCatalog maps a catalog product into the GraphQL shape.
func FromCatalog(p catalog.Product) *Product {
	materials := p.Materials
	if materials == nil {
		materials = []string{}
	}
	return &Product{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		Image:            p.Image,
		Description:      p.Description,
		Collection:       p.Collection,
		Materials:        materials,
		Dimensions:       p.Dimensions,
		Type:             string(p.Type),
		ShopifyProductID: p.ShopifyProductID,
		ShopifyVariantID: p.ShopifyVariantID,
		ShopifyHandle:    p.ShopifyHandle,
	}
}
