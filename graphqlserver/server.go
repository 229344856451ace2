package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/aguilerap-jc/thecatmanor/catalog"
	"github.com/aguilerap-jc/thecatmanor/graphql"
	gqlmodels "github.com/aguilerap-jc/thecatmanor/graphql/models"
	"github.com/aguilerap-jc/thecatmanor/graphql/registry"
)

// RootResolver is the root for graphql-go. The catalog aggregator backs all
// Query fields.
type RootResolver struct {
	Catalog *catalog.Aggregator
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{catalog: r.Catalog}
}

// QueryResolver implements the Query fields.
type QueryResolver struct {
	catalog *catalog.Aggregator
}

// ProductsArgs matches the products query arguments.
type ProductsArgs struct {
	Collection *string
}

func (r *QueryResolver) Products(ctx context.Context, args ProductsArgs) ([]*gqlmodels.Product, error) {
	collection := ""
	if args.Collection != nil {
		collection = *args.Collection
	}
	products := r.catalog.ByCollection(ctx, collection)
	out := make([]*gqlmodels.Product, 0, len(products))
	for _, p := range products {
		out = append(out, gqlmodels.FromCatalog(p))
	}
	return out, nil
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID string
}

func (r *QueryResolver) Product(ctx context.Context, args ProductArgs) (*gqlmodels.Product, error) {
	for _, p := range r.catalog.AllProducts(ctx) {
		if p.ID == args.ID {
			return gqlmodels.FromCatalog(p), nil
		}
	}
	return nil, nil
}

func (r *QueryResolver) Collections(ctx context.Context) ([]string, error) {
	return r.catalog.Collections(ctx), nil
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(agg *catalog.Aggregator) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Catalog: agg}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
