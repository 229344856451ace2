package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aguilerap-jc/thecatmanor/catalog"
	"github.com/aguilerap-jc/thecatmanor/config"
	"github.com/aguilerap-jc/thecatmanor/core/cache"
	"github.com/aguilerap-jc/thecatmanor/shopify"
)

// buildAggregator assembles the merged catalog the same way the server does.
// Without storefront credentials the external source stays nil and only the
// native catalog is served.
func buildAggregator() *catalog.Aggregator {
	var source catalog.ExternalSource
	if client, err := shopify.NewClient(config.Shopify()); err == nil {
		source = shopify.NewAdapter(client, cache.New())
	}
	return catalog.NewAggregator(source, config.ShopifyProducts(), config.ShopifyCollections())
}

var catalogListCmd = &cobra.Command{
	Use:   "catalog:list",
	Short: "Print the merged catalog (native and Shopify products)",
	Run: func(cmd *cobra.Command, args []string) {
		agg := buildAggregator()
		for _, p := range agg.AllProducts(context.Background()) {
			line := fmt.Sprintf("%-28s %-10s %-32s %s", p.ID, p.Price, p.Name, p.Collection)
			if p.IsShopify() {
				line += "  [shopify]"
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogListCmd)
}
