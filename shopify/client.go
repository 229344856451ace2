package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aguilerap-jc/thecatmanor/config"
)

// userAgent identifies this client to the platform.
const userAgent = "thecatmanor/1.0"

// ErrNotFound indicates the requested node does not exist (or is not visible
// to this storefront token).
var ErrNotFound = errors.New("shopify: not found")

// APIError is a non-2xx response from the Storefront API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shopify: status %d: %s", e.Status, e.Message)
}

// Client talks to the Shopify Storefront GraphQL API. It implements both the
// catalog reads the adapter needs and the checkout mutations the cart store
// needs. Construct once and inject; it is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// CheckoutAPI is the slice of Client the cart store depends on.
type CheckoutAPI interface {
	CheckoutCreate(ctx context.Context) (*Checkout, error)
	CheckoutFetch(ctx context.Context, id string) (*Checkout, error)
	CheckoutLineItemsAdd(ctx context.Context, checkoutID, variantGID string, quantity int) (*Checkout, error)
	CheckoutLineItemsRemove(ctx context.Context, checkoutID string, lineItemIDs []string) (*Checkout, error)
	CheckoutLineItemsUpdate(ctx context.Context, checkoutID, lineItemID string, quantity int) (*Checkout, error)
}

// NewClient builds a Client from storefront credentials. Returns an error for
// absent or placeholder credentials; callers treat that as external-disabled
// mode, not a failure.
func NewClient(cfg config.ShopifyConfig) (*Client, error) {
	if !cfg.Configured() {
		return nil, errors.New("shopify: storefront credentials absent or placeholder")
	}
	domain := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(cfg.Domain, "https://"), "http://"), "/")
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   fmt.Sprintf("https://%s/api/%s/graphql.json", domain, config.ShopifyAPIVersion),
		token:      cfg.Token,
	}, nil
}

// --- wire shapes (mirror the documents in queries.go) ---

type money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type wireVariant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	AvailableForSale bool             `json:"availableForSale"`
	Price            money            `json:"price"`
	CompareAtPrice   *money           `json:"compareAtPrice"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
}

type wireProduct struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Handle      string   `json:"handle"`
	Description string   `json:"description"`
	ProductType string   `json:"productType"`
	Tags        []string `json:"tags"`
	Images      struct {
		Edges []struct {
			Node Image `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node wireVariant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

type wireLineItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Variant  *struct {
		ID              string           `json:"id"`
		Title           string           `json:"title"`
		Price           money            `json:"price"`
		Image           *Image           `json:"image"`
		SelectedOptions []SelectedOption `json:"selectedOptions"`
		Product         struct {
			ID string `json:"id"`
		} `json:"product"`
	} `json:"variant"`
}

type wireCheckout struct {
	ID            string  `json:"id"`
	WebURL        string  `json:"webUrl"`
	CompletedAt   *string `json:"completedAt"`
	SubtotalPrice money   `json:"subtotalPrice"`
	LineItems     struct {
		Edges []struct {
			Node wireLineItem `json:"node"`
		} `json:"edges"`
	} `json:"lineItems"`
}

type userError struct {
	Message string `json:"message"`
}

type checkoutPayload struct {
	Checkout   *wireCheckout `json:"checkout"`
	UserErrors []userError   `json:"checkoutUserErrors"`
}

// --- transport ---

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// do posts one GraphQL document and decodes the data object into dst.
func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, dst interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shopify: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("shopify: graphql: %s", envelope.Errors[0].Message)
	}
	if dst != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, dst); err != nil {
			return fmt.Errorf("parsing data: %w", err)
		}
	}
	return nil
}

// --- catalog reads ---

// Products fetches up to first products from the full catalog.
func (c *Client) Products(ctx context.Context, first int) ([]Product, error) {
	if first <= 0 {
		first = 20
	}
	var data struct {
		Products struct {
			Edges []struct {
				Node wireProduct `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	if err := c.do(ctx, queryProducts, map[string]interface{}{"first": first}, &data); err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(data.Products.Edges))
	for _, e := range data.Products.Edges {
		out = append(out, flattenProduct(e.Node))
	}
	return out, nil
}

// ProductByID fetches a single product by global id.
func (c *Client) ProductByID(ctx context.Context, gid string) (*Product, error) {
	var data struct {
		Node *wireProduct `json:"node"`
	}
	if err := c.do(ctx, queryProductByID, map[string]interface{}{"id": gid}, &data); err != nil {
		return nil, err
	}
	if data.Node == nil || data.Node.ID == "" {
		return nil, ErrNotFound
	}
	p := flattenProduct(*data.Node)
	return &p, nil
}

// CollectionProducts fetches up to first member products of a collection.
func (c *Client) CollectionProducts(ctx context.Context, collectionGID string, first int) ([]Product, error) {
	if first <= 0 {
		first = 10
	}
	var data struct {
		Node *struct {
			Products struct {
				Edges []struct {
					Node wireProduct `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		} `json:"node"`
	}
	vars := map[string]interface{}{"id": collectionGID, "first": first}
	if err := c.do(ctx, queryCollectionProducts, vars, &data); err != nil {
		return nil, err
	}
	if data.Node == nil {
		return nil, ErrNotFound
	}
	out := make([]Product, 0, len(data.Node.Products.Edges))
	for _, e := range data.Node.Products.Edges {
		out = append(out, flattenProduct(e.Node))
	}
	return out, nil
}

// --- checkout session ---

// CheckoutCreate starts a new empty checkout session.
func (c *Client) CheckoutCreate(ctx context.Context) (*Checkout, error) {
	var data struct {
		CheckoutCreate checkoutPayload `json:"checkoutCreate"`
	}
	if err := c.do(ctx, mutationCheckoutCreate, nil, &data); err != nil {
		return nil, err
	}
	return checkoutFromPayload(data.CheckoutCreate)
}

// CheckoutFetch retrieves an existing checkout session by id.
func (c *Client) CheckoutFetch(ctx context.Context, id string) (*Checkout, error) {
	var data struct {
		Node *wireCheckout `json:"node"`
	}
	if err := c.do(ctx, queryCheckout, map[string]interface{}{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Node == nil || data.Node.ID == "" {
		return nil, ErrNotFound
	}
	return flattenCheckout(*data.Node), nil
}

// CheckoutLineItemsAdd adds one variant line to the session and returns the
// updated session.
func (c *Client) CheckoutLineItemsAdd(ctx context.Context, checkoutID, variantGID string, quantity int) (*Checkout, error) {
	var data struct {
		CheckoutLineItemsAdd checkoutPayload `json:"checkoutLineItemsAdd"`
	}
	vars := map[string]interface{}{
		"checkoutId": checkoutID,
		"lineItems": []map[string]interface{}{
			{"variantId": variantGID, "quantity": quantity},
		},
	}
	if err := c.do(ctx, mutationLineItemsAdd, vars, &data); err != nil {
		return nil, err
	}
	return checkoutFromPayload(data.CheckoutLineItemsAdd)
}

// CheckoutLineItemsRemove removes lines from the session.
func (c *Client) CheckoutLineItemsRemove(ctx context.Context, checkoutID string, lineItemIDs []string) (*Checkout, error) {
	var data struct {
		CheckoutLineItemsRemove checkoutPayload `json:"checkoutLineItemsRemove"`
	}
	vars := map[string]interface{}{
		"checkoutId":  checkoutID,
		"lineItemIds": lineItemIDs,
	}
	if err := c.do(ctx, mutationLineItemsRemove, vars, &data); err != nil {
		return nil, err
	}
	return checkoutFromPayload(data.CheckoutLineItemsRemove)
}

// CheckoutLineItemsUpdate changes the quantity of one line.
func (c *Client) CheckoutLineItemsUpdate(ctx context.Context, checkoutID, lineItemID string, quantity int) (*Checkout, error) {
	var data struct {
		CheckoutLineItemsUpdate checkoutPayload `json:"checkoutLineItemsUpdate"`
	}
	vars := map[string]interface{}{
		"checkoutId": checkoutID,
		"lineItems": []map[string]interface{}{
			{"id": lineItemID, "quantity": quantity},
		},
	}
	if err := c.do(ctx, mutationLineItemsUpdate, vars, &data); err != nil {
		return nil, err
	}
	return checkoutFromPayload(data.CheckoutLineItemsUpdate)
}

// --- flattening ---

func flattenProduct(w wireProduct) Product {
	p := Product{
		ID:          w.ID,
		Title:       w.Title,
		Handle:      w.Handle,
		Description: w.Description,
		ProductType: w.ProductType,
		Tags:        w.Tags,
	}
	for _, e := range w.Images.Edges {
		p.Images = append(p.Images, e.Node)
	}
	for _, e := range w.Variants.Edges {
		v := e.Node
		variant := Variant{
			ID:              v.ID,
			Title:           v.Title,
			Price:           v.Price.Amount,
			Available:       v.AvailableForSale,
			SelectedOptions: v.SelectedOptions,
		}
		if v.CompareAtPrice != nil {
			variant.CompareAtPrice = v.CompareAtPrice.Amount
		}
		p.Variants = append(p.Variants, variant)
	}
	return p
}

func flattenCheckout(w wireCheckout) *Checkout {
	co := &Checkout{
		ID:           w.ID,
		WebURL:       w.WebURL,
		Subtotal:     w.SubtotalPrice.Amount,
		CurrencyCode: w.SubtotalPrice.CurrencyCode,
	}
	if w.CompletedAt != nil {
		co.CompletedAt = *w.CompletedAt
	}
	for _, e := range w.LineItems.Edges {
		n := e.Node
		line := CheckoutLine{
			ID:       n.ID,
			Title:    n.Title,
			Quantity: n.Quantity,
		}
		if n.Variant != nil {
			line.VariantID = n.Variant.ID
			line.VariantTitle = n.Variant.Title
			line.Price = n.Variant.Price.Amount
			line.SelectedOptions = n.Variant.SelectedOptions
			line.ProductID = n.Variant.Product.ID
			if n.Variant.Image != nil {
				line.ImageSrc = n.Variant.Image.Src
			}
		}
		co.LineItems = append(co.LineItems, line)
	}
	return co
}

func checkoutFromPayload(p checkoutPayload) (*Checkout, error) {
	if len(p.UserErrors) > 0 {
		return nil, fmt.Errorf("shopify: checkout: %s", p.UserErrors[0].Message)
	}
	if p.Checkout == nil {
		return nil, errors.New("shopify: checkout mutation returned no checkout")
	}
	return flattenCheckout(*p.Checkout), nil
}
