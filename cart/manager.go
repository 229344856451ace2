package cart

import (
	"context"
	"sync"

	"github.com/aguilerap-jc/thecatmanor/shopify"
)

// Manager hands out one Store per browser session, creating and initializing
// it on first use. Stores are kept in memory for the process lifetime; their
// local lines and checkout attachment survive restarts through the
// repository.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
	api    shopify.CheckoutAPI
	repo   Repository
}

func NewManager(api shopify.CheckoutAPI, repo Repository) *Manager {
	return &Manager{
		stores: make(map[string]*Store),
		api:    api,
		repo:   repo,
	}
}

// Store returns the session's cart, restoring persisted state on first
// access.
func (m *Manager) Store(ctx context.Context, sessionID string) (*Store, error) {
	m.mu.Lock()
	s, ok := m.stores[sessionID]
	if !ok {
		s = NewStore(sessionID, m.api, m.repo)
		m.stores[sessionID] = s
	}
	m.mu.Unlock()

	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
