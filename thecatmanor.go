//go:build !cli
// +build !cli

package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aguilerap-jc/thecatmanor/api"
	_ "github.com/aguilerap-jc/thecatmanor/api/cart"
	_ "github.com/aguilerap-jc/thecatmanor/api/catalog"
	_ "github.com/aguilerap-jc/thecatmanor/api/graphql"
	"github.com/aguilerap-jc/thecatmanor/cart"
	"github.com/aguilerap-jc/thecatmanor/catalog"
	"github.com/aguilerap-jc/thecatmanor/config"
	"github.com/aguilerap-jc/thecatmanor/core/cache"
	_ "github.com/aguilerap-jc/thecatmanor/custom"
	htmlpkg "github.com/aguilerap-jc/thecatmanor/html"
	cartRepo "github.com/aguilerap-jc/thecatmanor/model/repository/cart"
	"github.com/aguilerap-jc/thecatmanor/shopify"
)

func getAuthMiddleware() echo.MiddlewareFunc {
	skipper := func(c echo.Context) bool {
		return config.IsPublicAPIPath(c.Path())
	}
	apiKey := os.Getenv("API_KEY")
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			return key == apiKey, nil
		},
		Skipper: skipper,
	})
}

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	repo, err := cartRepo.NewCartRepository(db)
	if err != nil {
		log.Fatalf("failed to prepare cart tables: %v", err)
	}

	// Storefront platform wiring. Without credentials the site runs the
	// native catalog alone and carts stay local.
	var checkoutAPI shopify.CheckoutAPI
	var source catalog.ExternalSource
	if client, cerr := shopify.NewClient(config.Shopify()); cerr != nil {
		log.Printf("Shopify disabled: %v", cerr)
	} else {
		checkoutAPI = client
		source = shopify.NewAdapter(client, cache.New())
		log.Println("Shopify storefront connected.")
	}
	aggregator := catalog.NewAggregator(source, config.ShopifyProducts(), config.ShopifyCollections())
	carts := cart.NewManager(checkoutAPI, repo)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(api.SessionMiddleware())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.Renderer = htmlpkg.NewTemplate()
	e.Static("/images", "public/images")

	deps := &api.Deps{
		Carts:   carts,
		Catalog: aggregator,
		DB:      db,
	}

	apiGroup := e.Group("/api")
	if os.Getenv("API_KEY") != "" {
		apiGroup.Use(getAuthMiddleware())
	}
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
