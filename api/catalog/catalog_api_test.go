package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aguilerap-jc/thecatmanor/api"
	catalogpkg "github.com/aguilerap-jc/thecatmanor/catalog"
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	deps := &api.Deps{Catalog: catalogpkg.NewAggregator(nil, nil, nil)}
	e := echo.New()
	RegisterCatalogRoutes(e.Group("/api"), deps)
	return e
}

func get(t *testing.T, e *echo.Echo, path string, dst interface{}) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if dst != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
			t.Fatalf("decoding %s: %v", path, err)
		}
	}
	return rec.Code
}

func TestListProducts(t *testing.T) {
	e := testServer(t)

	var body struct {
		Products []catalogpkg.Product `json:"products"`
		Count    int                  `json:"count"`
	}
	if code := get(t, e, "/api/catalog/products", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body.Count != 6 || len(body.Products) != 6 {
		t.Fatalf("count = %d, products = %d", body.Count, len(body.Products))
	}
	if body.Products[0].ID != "modular-perch-oak" {
		t.Errorf("declaration order not preserved: %q first", body.Products[0].ID)
	}
}

func TestFilterByCollection(t *testing.T) {
	e := testServer(t)

	var body struct {
		Products []catalogpkg.Product `json:"products"`
	}
	get(t, e, "/api/catalog/products?collection=Signature", &body)
	if len(body.Products) != 3 {
		t.Fatalf("Signature products = %d", len(body.Products))
	}
	for _, p := range body.Products {
		if p.Collection != "Signature" {
			t.Errorf("stray product %s in collection filter", p.ID)
		}
	}
}

func TestProductByID(t *testing.T) {
	e := testServer(t)

	var p catalogpkg.Product
	if code := get(t, e, "/api/catalog/products/luxury-lounger-sage", &p); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if p.Price != "$1,249" {
		t.Errorf("price = %q", p.Price)
	}

	if code := get(t, e, "/api/catalog/products/nope", nil); code != http.StatusNotFound {
		t.Errorf("missing product: status = %d", code)
	}
}

func TestCollections(t *testing.T) {
	e := testServer(t)

	var body struct {
		Collections []string `json:"collections"`
	}
	get(t, e, "/api/catalog/collections", &body)
	want := []string{"Signature", "Essential", "Eco"}
	if !reflect.DeepEqual(body.Collections, want) {
		t.Errorf("collections = %v, want %v", body.Collections, want)
	}
}

func TestRefresh(t *testing.T) {
	e := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/refresh", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Products int `json:"products"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Products != 6 {
		t.Errorf("products = %d", body.Products)
	}
}
