package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aguilerap-jc/thecatmanor/config"
	"github.com/aguilerap-jc/thecatmanor/shopify"
)

var variantIDsCmd = &cobra.Command{
	Use:   "shopify:variant-ids",
	Short: "List store products with the ids needed for SHOPIFY_PRODUCT_ID_n / SHOPIFY_VARIANT_ID_n",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := shopify.NewClient(config.Shopify())
		if err != nil {
			fmt.Println("Storefront credentials missing. Set SHOPIFY_DOMAIN and SHOPIFY_STOREFRONT_TOKEN first.")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		products, err := client.Products(ctx, 20)
		if err != nil {
			fmt.Printf("Fetching products failed: %v\n", err)
			os.Exit(1)
		}
		if len(products) == 0 {
			fmt.Println("The store has no products visible to this storefront token.")
			return
		}

		for i, p := range products {
			fmt.Printf("%d. %s (handle: %s)\n", i+1, p.Title, p.Handle)
			fmt.Printf("   product id: %s\n", p.ID)
			for _, v := range p.Variants {
				fmt.Printf("   variant:    %s (%s, %s)\n", v.ID, v.Title, v.Price)
			}
			fmt.Println()
		}

		fmt.Println("Suggested .env entries:")
		for i, p := range products {
			if i >= 2 || len(p.Variants) == 0 {
				break
			}
			fmt.Printf("SHOPIFY_PRODUCT_ID_%d=%s\n", i+1, p.ID)
			fmt.Printf("SHOPIFY_VARIANT_ID_%d=%s\n", i+1, p.Variants[0].ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(variantIDsCmd)
}
