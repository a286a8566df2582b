// Package checkout converts a user's cart into an immutable order. The
// transaction runs fetch → validate → materialize → persist → settle, with an
// optional shipping-address attach as a single follow-up save. A validation
// failure leaves no trace; a persist failure leaves the cart intact so the
// call is safely retryable.
package checkout

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/cart"
	"storefront/models"
	"storefront/store"
)

var (
	// ErrEmptyCart reports a checkout against a cart with no line above
	// quantity zero.
	ErrEmptyCart = errors.New("no valid items in cart")
	// ErrBadRequestID reports a request id that is not a UUID.
	ErrBadRequestID = errors.New("invalid request id")
)

// Request carries the optional parts of a checkout call. RequestID, when
// set, makes the call idempotent: retrying with the same id returns the
// order already placed for it instead of draining the cart twice.
type Request struct {
	RequestID string
	Shipping  *models.ShippingAddress
}

type Service struct {
	store *store.Store
	carts *cart.Manager

	mu     sync.Mutex
	placed map[string]int // request id -> order id, process-local
}

func NewService(s *store.Store, carts *cart.Manager) *Service {
	return &Service{store: s, carts: carts, placed: make(map[string]int)}
}

// PlaceOrder runs the checkout transaction for userID. On success the
// returned order is persisted and the source cart is empty. When the order
// was persisted but a later step's flush failed, the order is returned
// together with the flush error.
func (s *Service) PlaceOrder(userID int, req Request) (models.Order, error) {
	if req.RequestID != "" {
		if _, err := uuid.Parse(req.RequestID); err != nil {
			return models.Order{}, ErrBadRequestID
		}
		if order, ok := s.alreadyPlaced(req.RequestID); ok {
			return order, nil
		}
	}

	// Fetch + validate. Lines at quantity zero are soft-deleted; drop them
	// silently and fail only when nothing remains.
	userCart := s.carts.Get(userID)
	valid := make([]models.CartItem, 0, len(userCart.Items))
	for _, item := range userCart.SortedItems() {
		if item.Quantity > 0 {
			valid = append(valid, item)
		}
	}
	if len(valid) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	// Materialize. Items are copies: later cart mutations must never reach
	// a placed order.
	total := 0.0
	items := make([]models.CartItem, len(valid))
	for i, item := range valid {
		items[i] = item
		total += item.Price * float64(item.Quantity)
	}
	order := models.Order{
		UserID:    userID,
		Items:     items,
		Total:     roundCents(total),
		Status:    models.OrderStatusPending,
		OrderDate: time.Now().Format(time.RFC3339),
	}

	// Persist before touching the cart: a failed save aborts with the cart
	// untouched.
	if err := s.store.SaveOrder(&order); err != nil {
		return models.Order{}, err
	}
	if req.RequestID != "" {
		s.recordPlaced(req.RequestID, order.ID)
	}

	// Settle. A flush failure here cannot be compensated; the order stands
	// and the error is reported alongside it.
	if err := s.carts.Clear(userID); err != nil {
		return order, err
	}

	if req.Shipping != nil {
		addr := *req.Shipping
		order.ShippingAddress = &addr
		if err := s.store.SaveOrder(&order); err != nil {
			return order, err
		}
	}
	return order, nil
}

func (s *Service) alreadyPlaced(requestID string) (models.Order, bool) {
	s.mu.Lock()
	orderID, ok := s.placed[requestID]
	s.mu.Unlock()
	if !ok {
		return models.Order{}, false
	}
	order, err := s.store.Order(orderID)
	if err != nil {
		return models.Order{}, false
	}
	return order, true
}

func (s *Service) recordPlaced(requestID string, orderID int) {
	s.mu.Lock()
	s.placed[requestID] = orderID
	s.mu.Unlock()
}

// roundCents rounds to two decimals, half away from zero.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
