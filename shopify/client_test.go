package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aguilerap-jc/thecatmanor/config"
)

var (
	_ CheckoutAPI = (*Client)(nil)
	_ CatalogAPI  = (*Client)(nil)
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{httpClient: srv.Client(), endpoint: srv.URL, token: "test-token"}
}

func TestNewClientRejectsPlaceholders(t *testing.T) {
	if _, err := NewClient(config.ShopifyConfig{}); err == nil {
		t.Error("empty config accepted")
	}
	if _, err := NewClient(config.ShopifyConfig{
		Domain: config.PlaceholderDomain,
		Token:  config.PlaceholderToken,
	}); err == nil {
		t.Error("placeholder config accepted")
	}
	c, err := NewClient(config.ShopifyConfig{Domain: "real.myshopify.com", Token: "tok"})
	if err != nil {
		t.Fatalf("real config rejected: %v", err)
	}
	want := "https://real.myshopify.com/api/" + config.ShopifyAPIVersion + "/graphql.json"
	if c.endpoint != want {
		t.Errorf("endpoint = %q", c.endpoint)
	}
}

func TestProductsRequestAndFlattening(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Shopify-Storefront-Access-Token"); got != "test-token" {
			t.Errorf("token header = %q", got)
		}
		var req graphqlRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !strings.Contains(req.Query, "products(first: $first)") {
			t.Errorf("unexpected query: %s", req.Query)
		}
		if req.Variables["first"] != float64(20) {
			t.Errorf("first = %v", req.Variables["first"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"products":{"edges":[{"node":{
			"id":"gid://shopify/Product/111",
			"title":"Premium Cat Tower",
			"handle":"premium-cat-tower",
			"description":"Tall.",
			"images":{"edges":[{"node":{"src":"https://cdn.shopify.com/t.webp"}}]},
			"variants":{"edges":[{"node":{
				"id":"gid://shopify/ProductVariant/222",
				"title":"Default",
				"availableForSale":true,
				"price":{"amount":"129.0","currencyCode":"USD"}
			}}]}
		}}]}}}`))
	})

	products, err := client.Products(context.Background(), 0)
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("products = %d", len(products))
	}
	p := products[0]
	if p.Handle != "premium-cat-tower" || len(p.Images) != 1 || len(p.Variants) != 1 {
		t.Errorf("flattened product = %+v", p)
	}
	if p.Variants[0].Price != "129.0" || !p.Variants[0].Available {
		t.Errorf("variant = %+v", p.Variants[0])
	}
}

func TestGraphQLErrorsSurface(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"Field 'nope' doesn't exist"}]}`))
	})

	if _, err := client.Products(context.Background(), 5); err == nil || !strings.Contains(err.Error(), "doesn't exist") {
		t.Errorf("err = %v", err)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	})
	if _, err := client.Products(context.Background(), 5); err != ErrNotFound {
		t.Errorf("404: err = %v", err)
	}

	client = testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	})
	_, err := client.Products(context.Background(), 5)
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Status != http.StatusTooManyRequests {
		t.Errorf("429: err = %v", err)
	}
}

func TestCheckoutUserErrorsSurface(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"checkoutLineItemsAdd":{
			"checkout":null,
			"checkoutUserErrors":[{"message":"Variant is out of stock"}]
		}}}`))
	})

	_, err := client.CheckoutLineItemsAdd(context.Background(), "gid://shopify/Checkout/1", "gid://shopify/ProductVariant/2", 1)
	if err == nil || !strings.Contains(err.Error(), "out of stock") {
		t.Errorf("err = %v", err)
	}
}

func TestCheckoutCreateAndFetch(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if strings.Contains(req.Query, "checkoutCreate") {
			w.Write([]byte(`{"data":{"checkoutCreate":{
				"checkout":{"id":"gid://shopify/Checkout/1","webUrl":"https://x/1","completedAt":null,
					"subtotalPrice":{"amount":"0.0","currencyCode":"USD"},"lineItems":{"edges":[]}},
				"checkoutUserErrors":[]
			}}}`))
			return
		}
		w.Write([]byte(`{"data":{"node":{"id":"gid://shopify/Checkout/1","webUrl":"https://x/1",
			"completedAt":"2026-08-30T10:00:00Z",
			"subtotalPrice":{"amount":"129.0","currencyCode":"USD"},
			"lineItems":{"edges":[{"node":{"id":"li1","title":"Tower","quantity":1,
				"variant":{"id":"gid://shopify/ProductVariant/222","title":"Default",
					"price":{"amount":"129.0","currencyCode":"USD"},
					"image":{"src":"https://cdn/t.webp"},
					"product":{"id":"gid://shopify/Product/111"}}}}]}}}}`))
	})

	ctx := context.Background()
	co, err := client.CheckoutCreate(ctx)
	if err != nil {
		t.Fatalf("CheckoutCreate: %v", err)
	}
	if co.ID != "gid://shopify/Checkout/1" || co.Completed() {
		t.Errorf("created checkout = %+v", co)
	}

	co, err = client.CheckoutFetch(ctx, co.ID)
	if err != nil {
		t.Fatalf("CheckoutFetch: %v", err)
	}
	if !co.Completed() {
		t.Errorf("completedAt not mapped")
	}
	if len(co.LineItems) != 1 || co.LineItems[0].ProductID != "gid://shopify/Product/111" {
		t.Errorf("line items = %+v", co.LineItems)
	}
}
