package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/aguilerap-jc/thecatmanor/catalog"
	cartEntity "github.com/aguilerap-jc/thecatmanor/model/entity/cart"
	"github.com/aguilerap-jc/thecatmanor/shopify"
)

// State is the store's lifecycle phase.
type State string

const (
	// StateUninitialized means Initialize has not run yet.
	StateUninitialized State = "uninitialized"
	// StateActive means the store is serving with platform checkout enabled.
	StateActive State = "active"
	// StateExternalDisabled means the store runs local-only: no storefront
	// credentials, so Shopify products cannot be purchased.
	StateExternalDisabled State = "external_disabled"
)

// Repository persists the local half of a cart between requests.
type Repository interface {
	LinesBySession(sessionID string) ([]cartEntity.Line, error)
	ReplaceLines(sessionID string, lines []cartEntity.Line) error
	CheckoutRef(sessionID string) (*cartEntity.CheckoutRef, error)
	SaveCheckoutRef(sessionID, checkoutID, webURL string) error
	DeleteCheckoutRef(sessionID string) error
	ClearSession(sessionID string) error
}

// Store is one browser session's cart. Native lines are held locally and
// persisted through the repository; Shopify lines live in the platform's
// checkout session, which the store mirrors after every mutation. All methods
// are safe for concurrent use. Mutations hold the lock across the platform
// round-trip, so overlapping requests serialize end to end instead of racing
// the checkout session; that is stricter locking than the isLoading flag the
// drawer reads, and snapshots taken by other requests never see the flag set.
type Store struct {
	mu        sync.Mutex
	sessionID string
	state     State
	items     []Line
	checkout  *shopify.Checkout
	isOpen    bool
	isLoading bool

	api  shopify.CheckoutAPI
	repo Repository
}

// Snapshot is the cart as rendered to clients.
type Snapshot struct {
	Items          []Line  `json:"items"`
	Subtotal       string  `json:"subtotal"`
	SubtotalAmount float64 `json:"subtotalAmount"`
	ItemCount      int     `json:"itemCount"`
	CheckoutURL    string  `json:"checkoutUrl,omitempty"`
	IsOpen         bool    `json:"isOpen"`
	IsLoading      bool    `json:"isLoading"`
	State          State   `json:"state"`
}

// NewStore builds an uninitialized store. api may be nil, which puts the
// store into local-only mode on Initialize.
func NewStore(sessionID string, api shopify.CheckoutAPI, repo Repository) *Store {
	return &Store{
		sessionID: sessionID,
		state:     StateUninitialized,
		api:       api,
		repo:      repo,
	}
}

// Initialize restores the persisted cart: local lines from the repository and
// the platform checkout the session was attached to. A checkout that was
// completed or can no longer be fetched is discarded and a fresh session is
// created in its place, as is one for sessions that never had a checkout.
// Safe to call repeatedly.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateUninitialized {
		return nil
	}

	if s.repo != nil {
		rows, err := s.repo.LinesBySession(s.sessionID)
		if err != nil {
			return err
		}
		for _, row := range rows {
			s.items = append(s.items, lineFromRow(row))
		}
	}

	if s.api == nil {
		s.state = StateExternalDisabled
		return nil
	}
	s.state = StateActive

	if s.repo != nil {
		ref, err := s.repo.CheckoutRef(s.sessionID)
		if err != nil {
			return err
		}
		if ref != nil {
			co, err := s.api.CheckoutFetch(ctx, ref.CheckoutID)
			if err == nil && !co.Completed() {
				s.checkout = co
				s.rebuild()
				return nil
			}
			if err != nil {
				log.Printf("cart %s: dropping stale checkout: %v", s.sessionID, err)
			}
			if derr := s.repo.DeleteCheckoutRef(s.sessionID); derr != nil {
				log.Printf("cart %s: deleting checkout ref: %v", s.sessionID, derr)
			}
		}
	}

	if err := s.ensureCheckout(ctx); err != nil {
		// Leave the checkout unset; AddShopify retries creation later.
		log.Printf("cart %s: creating checkout: %v", s.sessionID, err)
	}
	return nil
}

// AddNative adds one unit of a native catalog product, merging with an
// existing line for the same product.
func (s *Store) AddNative(ctx context.Context, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = mergeNative(s.items, p)
	s.persist()
	return nil
}

// AddShopify adds one unit of a Shopify product to the platform checkout,
// recreating the session if the one from Initialize was lost or completed
// in the meantime. Products that only carry
// placeholder ids, and stores running local-only, are a silent no-op: the
// shopper keeps a working cart either way.
func (s *Store) AddShopify(ctx context.Context, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.api == nil {
		log.Printf("cart %s: shopify add ignored, external purchasing disabled", s.sessionID)
		return nil
	}
	variant := shopify.VariantGID(p.ShopifyVariantID)
	if !shopify.IsNumericID(shopify.NumericID(variant)) {
		log.Printf("cart %s: shopify add ignored, placeholder variant %q", s.sessionID, p.ShopifyVariantID)
		return nil
	}

	if err := s.ensureCheckout(ctx); err != nil {
		return err
	}
	s.isLoading = true
	co, err := s.api.CheckoutLineItemsAdd(ctx, s.checkout.ID, variant, 1)
	s.isLoading = false
	if err != nil {
		return err
	}
	s.checkout = co
	s.rebuild()
	return nil
}

// Remove deletes a line entirely, routing by the line id's origin.
func (s *Store) Remove(ctx context.Context, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(ctx, lineID)
}

// UpdateQuantity sets a line's quantity. Quantities below one remove the
// line.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity < 1 {
		return s.remove(ctx, lineID)
	}

	if IsNativeLineID(lineID) {
		for i := range s.items {
			if s.items[i].ID == lineID {
				s.items[i].Quantity = quantity
				break
			}
		}
		s.persist()
		return nil
	}

	if s.api == nil || s.checkout == nil {
		return nil
	}
	s.isLoading = true
	co, err := s.api.CheckoutLineItemsUpdate(ctx, s.checkout.ID, lineID, quantity)
	s.isLoading = false
	if err != nil {
		return err
	}
	s.checkout = co
	s.rebuild()
	return nil
}

// Clear empties the whole cart: local lines are dropped and the platform
// checkout is abandoned in favor of a brand-new session, whose id replaces
// the persisted one.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()

	if s.api == nil {
		return nil
	}
	// Drop the old ref first so a failed create cannot resurrect the
	// abandoned checkout on the next Initialize.
	s.checkout = nil
	if s.repo != nil {
		if err := s.repo.DeleteCheckoutRef(s.sessionID); err != nil {
			log.Printf("cart %s: deleting checkout ref: %v", s.sessionID, err)
		}
	}
	return s.ensureCheckout(ctx)
}

// Open, Close and Toggle drive the cart drawer.
func (s *Store) Open() { s.mu.Lock(); s.isOpen = true; s.mu.Unlock() }

func (s *Store) Close() { s.mu.Lock(); s.isOpen = false; s.mu.Unlock() }

func (s *Store) Toggle() {
	s.mu.Lock()
	s.isOpen = !s.isOpen
	s.mu.Unlock()
}

// CheckoutURL returns the platform checkout page, or empty when the cart has
// no open checkout. Local-only carts never have one.
func (s *Store) CheckoutURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkout == nil || s.checkout.Completed() {
		return ""
	}
	return s.checkout.WebURL
}

// Snapshot renders the current cart.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Line, len(s.items))
	copy(items, s.items)
	amount := subtotal(s.items, s.checkout)
	snap := Snapshot{
		Items:          items,
		Subtotal:       catalog.FormatPrice(amount),
		SubtotalAmount: amount,
		ItemCount:      itemCount(s.items),
		IsOpen:         s.isOpen,
		IsLoading:      s.isLoading,
		State:          s.state,
	}
	if s.checkout != nil && !s.checkout.Completed() {
		snap.CheckoutURL = s.checkout.WebURL
	}
	return snap
}

// --- internals, caller holds the lock ---

func (s *Store) remove(ctx context.Context, lineID string) error {
	if IsNativeLineID(lineID) {
		kept := s.items[:0]
		for _, l := range s.items {
			if l.ID != lineID {
				kept = append(kept, l)
			}
		}
		s.items = kept
		s.persist()
		return nil
	}

	if s.api == nil || s.checkout == nil {
		return nil
	}
	s.isLoading = true
	co, err := s.api.CheckoutLineItemsRemove(ctx, s.checkout.ID, []string{lineID})
	s.isLoading = false
	if err != nil {
		return err
	}
	s.checkout = co
	s.rebuild()
	return nil
}

// ensureCheckout makes sure an open checkout session exists.
func (s *Store) ensureCheckout(ctx context.Context) error {
	if s.checkout != nil && !s.checkout.Completed() {
		return nil
	}
	s.isLoading = true
	co, err := s.api.CheckoutCreate(ctx)
	s.isLoading = false
	if err != nil {
		return err
	}
	s.checkout = co
	if s.repo != nil {
		if err := s.repo.SaveCheckoutRef(s.sessionID, co.ID, co.WebURL); err != nil {
			log.Printf("cart %s: saving checkout ref: %v", s.sessionID, err)
		}
	}
	return nil
}

// rebuild recomputes the merged line list: local lines keep their position,
// the checkout lines follow in platform order.
func (s *Store) rebuild() {
	s.items = append(onlyNative(s.items), linesFromCheckout(s.checkout)...)
}

// persist mirrors the local lines into the repository.
func (s *Store) persist() {
	if s.repo == nil {
		return
	}
	native := onlyNative(s.items)
	rows := make([]cartEntity.Line, 0, len(native))
	for _, l := range native {
		snap, err := json.Marshal(l)
		if err != nil {
			log.Printf("cart %s: encoding line %s: %v", s.sessionID, l.ID, err)
		}
		rows = append(rows, cartEntity.Line{
			ProductID: NativeProductID(l.ID),
			Name:      l.Name,
			Price:     l.Price,
			Image:     l.Image,
			Quantity:  l.Quantity,
			Snapshot:  snap,
		})
	}
	if err := s.repo.ReplaceLines(s.sessionID, rows); err != nil {
		log.Printf("cart %s: persisting lines: %v", s.sessionID, err)
	}
}

// lineFromRow rebuilds a cart line from its persisted form, preferring the
// JSON snapshot when present.
func lineFromRow(row cartEntity.Line) Line {
	if len(row.Snapshot) > 0 {
		var l Line
		if err := json.Unmarshal(row.Snapshot, &l); err == nil && l.ID != "" {
			l.Quantity = row.Quantity
			return l
		}
	}
	return Line{
		ID:       NativeLineID(row.ProductID),
		Name:     row.Name,
		Price:    row.Price,
		Image:    row.Image,
		Quantity: row.Quantity,
		Type:     catalog.TypeNative,
	}
}
