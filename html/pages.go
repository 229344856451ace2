package html

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aguilerap-jc/thecatmanor/api"
	"github.com/aguilerap-jc/thecatmanor/config"
)

func init() {
	api.RegisterHTMLModule(RegisterPageRoutes)
}

// RegisterPageRoutes wires the storefront pages on the root server.
func RegisterPageRoutes(e *echo.Echo, deps *api.Deps) {
	site := func(c echo.Context, title string) map[string]interface{} {
		return map[string]interface{}{
			"SiteName": config.AppConfig.SiteName,
			"MediaUrl": config.AppConfig.MediaUrl,
			"Title":    title,
		}
	}

	e.GET("/", func(c echo.Context) error {
		data := site(c, "Home")
		all := deps.Catalog.AllProducts(c.Request().Context())
		if len(all) > 3 {
			all = all[:3]
		}
		data["Featured"] = all
		return c.Render(http.StatusOK, "home.html", data)
	})

	e.GET("/products", func(c echo.Context) error {
		ctx := c.Request().Context()
		selected := c.QueryParam("collection")
		data := site(c, "Shop")
		data["Products"] = deps.Catalog.ByCollection(ctx, selected)
		data["Collections"] = deps.Catalog.Collections(ctx)
		data["Selected"] = selected
		return c.Render(http.StatusOK, "products.html", data)
	})

	e.GET("/product/:id", func(c echo.Context) error {
		id := c.Param("id")
		for _, p := range deps.Catalog.AllProducts(c.Request().Context()) {
			if p.ID == id {
				data := site(c, p.Name)
				data["Product"] = p
				return c.Render(http.StatusOK, "product.html", data)
			}
		}
		return c.String(http.StatusNotFound, "Product not found")
	})

	static := map[string]string{
		"/about":   "about.html",
		"/contact": "contact.html",
		"/privacy": "privacy.html",
		"/terms":   "terms.html",
	}
	for path, tmpl := range static {
		name := tmpl
		title := name[:len(name)-len(".html")]
		e.GET(path, func(c echo.Context) error {
			return c.Render(http.StatusOK, name, site(c, titleize(title)))
		})
	}
}

func titleize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
