package cart

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aguilerap-jc/thecatmanor/api"
	cartpkg "github.com/aguilerap-jc/thecatmanor/cart"
	"github.com/aguilerap-jc/thecatmanor/catalog"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// RegisterCartRoutes wires the session cart under /api/cart. Line ids are
// passed in request bodies because platform line-item ids contain slashes.
func RegisterCartRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/cart")

	store := func(c echo.Context) (*cartpkg.Store, error) {
		return deps.Carts.Store(c.Request().Context(), api.SessionID(c))
	}

	// GET /api/cart – current snapshot
	g.GET("", func(c echo.Context) error {
		s, err := store(c)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, s.Snapshot())
	})

	// POST /api/cart/add – add one unit of a catalog product
	g.POST("/add", func(c echo.Context) error {
		var body struct {
			ProductID string `json:"productId"`
		}
		if err := c.Bind(&body); err != nil || body.ProductID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "productId is required"})
		}

		ctx := c.Request().Context()
		product, ok := findProduct(ctx, deps.Catalog, body.ProductID)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown product"})
		}
		s, err := store(c)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if product.IsShopify() {
			err = s.AddShopify(ctx, product)
		} else {
			err = s.AddNative(ctx, product)
		}
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		s.Open()
		return c.JSON(http.StatusOK, s.Snapshot())
	})

	// POST /api/cart/update – set a line's quantity (below 1 removes)
	g.POST("/update", func(c echo.Context) error {
		var body struct {
			LineID   string `json:"lineId"`
			Quantity int    `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil || body.LineID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "lineId is required"})
		}
		s, err := store(c)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if err := s.UpdateQuantity(c.Request().Context(), body.LineID, body.Quantity); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, s.Snapshot())
	})

	// POST /api/cart/remove – delete a line
	g.POST("/remove", func(c echo.Context) error {
		var body struct {
			LineID string `json:"lineId"`
		}
		if err := c.Bind(&body); err != nil || body.LineID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "lineId is required"})
		}
		s, err := store(c)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if err := s.Remove(c.Request().Context(), body.LineID); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, s.Snapshot())
	})

	// POST /api/cart/clear – empty the cart
	g.POST("/clear", func(c echo.Context) error {
		s, err := store(c)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if err := s.Clear(c.Request().Context()); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, s.Snapshot())
	})

	// Drawer state
	g.POST("/open", drawerHandler(store, (*cartpkg.Store).Open))
	g.POST("/close", drawerHandler(store, (*cartpkg.Store).Close))
	g.POST("/toggle", drawerHandler(store, (*cartpkg.Store).Toggle))

	// POST /api/cart/checkout – hand the shopper to the platform
	g.POST("/checkout", func(c echo.Context) error {
		s, err := store(c)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		url := s.CheckoutURL()
		if url == "" {
			return c.JSON(http.StatusConflict, echo.Map{"error": "cart has no open checkout"})
		}
		return c.JSON(http.StatusOK, echo.Map{"url": url})
	})
}

func drawerHandler(store func(echo.Context) (*cartpkg.Store, error), op func(*cartpkg.Store)) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, err := store(c)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		op(s)
		return c.JSON(http.StatusOK, s.Snapshot())
	}
}

func findProduct(ctx context.Context, agg *catalog.Aggregator, id string) (catalog.Product, bool) {
	for _, p := range agg.AllProducts(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}
