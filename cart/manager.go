// Package cart owns all mutation of a user's shopping cart. A cart's
// read-modify-write cycle is a critical section per user: mutations to the
// same cart are serialized behind a per-user lock, mutations to different
// carts never contend.
package cart

import (
	"errors"
	"sync"

	"storefront/models"
	"storefront/store"
)

// ErrInvalidQuantity rejects negative quantities at the core boundary even
// though the transport layer validates first.
var ErrInvalidQuantity = errors.New("invalid quantity")

type Manager struct {
	store *store.Store

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewManager(s *store.Store) *Manager {
	return &Manager{store: s, locks: make(map[int]*sync.Mutex)}
}

func (m *Manager) userLock(userID int) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[userID] = l
	}
	return l
}

// Get returns the user's cart, or a fresh empty one if none has been
// persisted yet. It never fails; the cart is first written through on its
// first mutation.
func (m *Manager) Get(userID int) models.Cart {
	c, ok := m.store.Cart(userID)
	if !ok {
		return models.NewCart(userID)
	}
	return c
}

// AddItem snapshots the product's current price, name and image into the
// line for productID. A line for the same product is replaced outright; the
// given quantity is taken as is, not accumulated.
func (m *Manager) AddItem(userID, productID, quantity int) (models.Cart, error) {
	if quantity < 0 {
		return models.Cart{}, ErrInvalidQuantity
	}
	product, err := m.store.Product(productID)
	if err != nil {
		return models.Cart{}, err
	}

	l := m.userLock(userID)
	l.Lock()
	defer l.Unlock()

	c := m.Get(userID)
	c.AddItem(models.CartItem{
		ProductID:   product.ID,
		Quantity:    quantity,
		Price:       product.Price,
		ProductName: product.Name,
		ImageURL:    product.ImageURL,
	})
	return c, m.store.SaveCart(c)
}

// UpdateQuantity sets the quantity on an existing line. Quantity zero marks
// the line as logically removed; checkout drops such lines silently.
func (m *Manager) UpdateQuantity(userID, productID, quantity int) (models.Cart, error) {
	if quantity < 0 {
		return models.Cart{}, ErrInvalidQuantity
	}

	l := m.userLock(userID)
	l.Lock()
	defer l.Unlock()

	c := m.Get(userID)
	if !c.SetQuantity(productID, quantity) {
		return models.Cart{}, store.ErrNotFound
	}
	return c, m.store.SaveCart(c)
}

// Remove drops the line for productID. Removing an absent line is a no-op,
// not an error.
func (m *Manager) Remove(userID, productID int) (models.Cart, error) {
	l := m.userLock(userID)
	l.Lock()
	defer l.Unlock()

	c := m.Get(userID)
	c.RemoveItem(productID)
	return c, m.store.SaveCart(c)
}

// Clear empties the cart and persists it. Idempotent.
func (m *Manager) Clear(userID int) error {
	l := m.userLock(userID)
	l.Lock()
	defer l.Unlock()

	c := m.Get(userID)
	c.Clear()
	return m.store.SaveCart(c)
}
