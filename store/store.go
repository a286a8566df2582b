// Package store is the in-memory source of truth for products, users, carts
// and orders. Every mutation is written through to the backing resource for
// its kind before the call returns; a failed flush is reported to the caller
// but never rolls the memory image back.
package store

import (
	"log"

	"storefront/database"
	"storefront/models"
)

type Store struct {
	products *collection[models.Product]
	users    *collection[models.User]
	carts    *collection[models.Cart]
	orders   *collection[models.Order]
}

// Open loads all four collections from their resources. Missing resources
// are created empty; id counters resume past the highest loaded id.
func Open(res *database.Resources) (*Store, error) {
	products, err := loadCollection(res.Products, func(p models.Product) int { return p.ID }, cloneProduct)
	if err != nil {
		return nil, err
	}
	users, err := loadCollection(res.Users, func(u models.User) int { return u.ID }, func(u models.User) models.User { return u })
	if err != nil {
		return nil, err
	}
	carts, err := loadCollection(res.Carts, func(c models.Cart) int { return c.UserID }, cloneCart)
	if err != nil {
		return nil, err
	}
	orders, err := loadCollection(res.Orders, func(o models.Order) int { return o.ID }, cloneOrder)
	if err != nil {
		return nil, err
	}

	log.Printf("store: loaded %d products, %d users, %d carts, %d orders",
		products.len(), users.len(), carts.len(), orders.len())

	return &Store{products: products, users: users, carts: carts, orders: orders}, nil
}

// --- Products ---

func (s *Store) Products() []models.Product { return s.products.all() }

func (s *Store) Product(id int) (models.Product, error) {
	p, ok := s.products.get(id)
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// SaveProduct upserts the product, assigning the next id when p.ID is zero.
func (s *Store) SaveProduct(p *models.Product) error {
	id, err := s.products.save(p.ID, func(id int) models.Product {
		p.ID = id
		return *p
	})
	p.ID = id
	return err
}

func (s *Store) DeleteProduct(id int) error { return s.products.delete(id) }

// --- Users ---

func (s *Store) Users() []models.User { return s.users.all() }

func (s *Store) User(id int) (models.User, error) {
	u, ok := s.users.get(id)
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	s.users.mu.RLock()
	defer s.users.mu.RUnlock()
	for _, u := range s.users.items {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// CreateUser allocates the next user id and inserts the account. The email
// uniqueness check shares the write lock with the insert, so two concurrent
// sign-ups for one email cannot both succeed.
func (s *Store) CreateUser(email, password, role string) (models.User, error) {
	c := s.users
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, u := range c.items {
		if u.Email == email {
			return models.User{}, ErrEmailExists
		}
	}
	u := models.User{ID: c.next, Email: email, Password: password, Role: role}
	c.next++
	c.items[u.ID] = u
	return u, c.flushLocked()
}

// SaveUser upserts under the user's caller-supplied id.
func (s *Store) SaveUser(u models.User) error {
	_, err := s.users.save(u.ID, func(int) models.User { return u })
	return err
}

// --- Carts ---

func (s *Store) Carts() []models.Cart { return s.carts.all() }

// Cart returns the stored cart for userID; ok is false when the user has
// never persisted one. Callers wanting get-or-create semantics go through
// the cart manager.
func (s *Store) Cart(userID int) (models.Cart, bool) {
	return s.carts.get(userID)
}

func (s *Store) SaveCart(c models.Cart) error {
	_, err := s.carts.save(c.UserID, func(int) models.Cart { return c })
	return err
}

// --- Orders ---

func (s *Store) Orders() []models.Order { return s.orders.all() }

func (s *Store) Order(id int) (models.Order, error) {
	o, ok := s.orders.get(id)
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return o, nil
}

func (s *Store) UserOrders(userID int) []models.Order {
	all := s.orders.all()
	orders := make([]models.Order, 0)
	for _, o := range all {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders
}

// SaveOrder upserts the order, assigning the next id when o.ID is zero.
func (s *Store) SaveOrder(o *models.Order) error {
	id, err := s.orders.save(o.ID, func(id int) models.Order {
		o.ID = id
		return *o
	})
	o.ID = id
	return err
}

// --- clones ---
// Entities cross the store boundary by value with no shared slices or maps,
// so a caller mutating what it got back can never corrupt the canonical copy.

func cloneProduct(p models.Product) models.Product {
	if p.Keywords != nil {
		p.Keywords = append([]string(nil), p.Keywords...)
	}
	return p
}

func cloneCart(c models.Cart) models.Cart {
	items := make(map[int]models.CartItem, len(c.Items))
	for id, item := range c.Items {
		items[id] = item
	}
	c.Items = items
	return c
}

func cloneOrder(o models.Order) models.Order {
	if o.Items != nil {
		o.Items = append([]models.CartItem(nil), o.Items...)
	}
	if o.ShippingAddress != nil {
		addr := *o.ShippingAddress
		o.ShippingAddress = &addr
	}
	return o
}
