package custom

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/aguilerap-jc/thecatmanor/api"
	"github.com/aguilerap-jc/thecatmanor/cmd"
	"github.com/aguilerap-jc/thecatmanor/config"
	"github.com/aguilerap-jc/thecatmanor/cron"
	gqlregistry "github.com/aguilerap-jc/thecatmanor/graphql/registry"
)

func init() {
	// GraphQL extension: basic shop info for storefront clients
	gqlregistry.Register("shopInfo", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{
			"name":             config.AppConfig.SiteName,
			"currency":         "USD",
			"externalCheckout": config.Shopify().Configured(),
		}, nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "custom:hello",
		Short: "Custom command example",
		Run: func(c *cobra.Command, args []string) {
			fmt.Println("Hello from", config.AppConfig.SiteName)
		},
	})

	// Cron job
	cron.Register("heartbeat", "@every 1m", func(args ...string) {
		fmt.Println("Custom cron: heartbeat at", args)
	})

	// HTTP route
	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"pong": "ok"})
	})
}
