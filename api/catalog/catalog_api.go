package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aguilerap-jc/thecatmanor/api"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// RegisterCatalogRoutes wires the merged catalog under /api/catalog.
func RegisterCatalogRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/catalog")

	// GET /api/catalog/products?collection=Signature – merged product list
	g.GET("/products", func(c echo.Context) error {
		ctx := c.Request().Context()
		products := deps.Catalog.ByCollection(ctx, c.QueryParam("collection"))
		return c.JSON(http.StatusOK, echo.Map{
			"products": products,
			"count":    len(products),
		})
	})

	// GET /api/catalog/products/:id – one product
	g.GET("/products/:id", func(c echo.Context) error {
		id := c.Param("id")
		for _, p := range deps.Catalog.AllProducts(c.Request().Context()) {
			if p.ID == id {
				return c.JSON(http.StatusOK, p)
			}
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	})

	// GET /api/catalog/collections – distinct collection labels
	g.GET("/collections", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"collections": deps.Catalog.Collections(c.Request().Context()),
		})
	})

	// POST /api/catalog/refresh – drop cached platform data and re-resolve
	g.POST("/refresh", func(c echo.Context) error {
		n := deps.Catalog.Refresh(c.Request().Context())
		return c.JSON(http.StatusOK, echo.Map{"products": n})
	})
}
