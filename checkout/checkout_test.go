package checkout

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/cart"
	"storefront/database"
	"storefront/models"
	"storefront/store"
)

func testService(t *testing.T) (*Service, *cart.Manager, *store.Store) {
	t.Helper()
	s, err := store.Open(database.OpenFiles(t.TempDir()))
	require.NoError(t, err)
	carts := cart.NewManager(s)
	return NewService(s, carts), carts, s
}

func seedProduct(t *testing.T, s *store.Store, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, StockQuantity: 100}
	require.NoError(t, s.SaveProduct(&p))
	return p
}

func TestEmptyCartFails(t *testing.T) {
	svc, _, _ := testService(t)

	_, err := svc.PlaceOrder(1, Request{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestAllZeroQuantityCartFailsAndIsUntouched(t *testing.T) {
	svc, carts, s := testService(t)
	mug := seedProduct(t, s, "Mug", 4.50)

	_, err := carts.AddItem(1, mug.ID, 3)
	require.NoError(t, err)
	_, err = carts.UpdateQuantity(1, mug.ID, 0)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(1, Request{})
	assert.ErrorIs(t, err, ErrEmptyCart)

	// The soft-deleted line stays in the cart; no order was created.
	c := carts.Get(1)
	assert.Len(t, c.Items, 1)
	assert.Empty(t, s.Orders())
}

func TestCheckoutScenario(t *testing.T) {
	svc, carts, s := testService(t)
	mug := seedProduct(t, s, "Mug", 9.99)
	plate := seedProduct(t, s, "Plate", 5.00)

	_, err := carts.AddItem(7, mug.ID, 2)
	require.NoError(t, err)
	_, err = carts.AddItem(7, plate.ID, 1)
	require.NoError(t, err)

	order, err := svc.PlaceOrder(7, Request{})
	require.NoError(t, err)

	assert.Equal(t, 24.98, order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.NotZero(t, order.ID)
	assert.NotEmpty(t, order.OrderDate)

	c := carts.Get(7)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.Total)

	persisted, err := s.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, persisted)
}

func TestZeroQuantityLinesDroppedSilently(t *testing.T) {
	svc, carts, s := testService(t)
	mug := seedProduct(t, s, "Mug", 4.00)
	plate := seedProduct(t, s, "Plate", 6.00)

	_, err := carts.AddItem(2, mug.ID, 1)
	require.NoError(t, err)
	_, err = carts.AddItem(2, plate.ID, 2)
	require.NoError(t, err)
	_, err = carts.UpdateQuantity(2, mug.ID, 0)
	require.NoError(t, err)

	order, err := svc.PlaceOrder(2, Request{})
	require.NoError(t, err)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, plate.ID, order.Items[0].ProductID)
	assert.Equal(t, 12.00, order.Total)
}

func TestOrderItemsAreDeepCopies(t *testing.T) {
	svc, carts, s := testService(t)
	mug := seedProduct(t, s, "Mug", 4.00)

	_, err := carts.AddItem(3, mug.ID, 2)
	require.NoError(t, err)

	order, err := svc.PlaceOrder(3, Request{})
	require.NoError(t, err)

	// Refill and mutate the cart after checkout; the placed order must not move.
	_, err = carts.AddItem(3, mug.ID, 9)
	require.NoError(t, err)

	persisted, err := s.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, persisted.Items[0].Quantity)
	assert.Equal(t, 8.00, persisted.Total)
}

func TestShippingAddressAttach(t *testing.T) {
	svc, carts, s := testService(t)
	mug := seedProduct(t, s, "Mug", 4.00)

	_, err := carts.AddItem(4, mug.ID, 1)
	require.NoError(t, err)

	addr := models.ShippingAddress{
		FullName: "Ada Lovelace", Email: "ada@example.com", Phone: "555-0100",
		Address: "12 Engine St", City: "London", State: "LDN", PostalCode: "E1 6AN",
	}
	order, err := svc.PlaceOrder(4, Request{Shipping: &addr})
	require.NoError(t, err)
	require.NotNil(t, order.ShippingAddress)
	assert.Equal(t, addr, *order.ShippingAddress)

	persisted, err := s.Order(order.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted.ShippingAddress)
	assert.Equal(t, addr, *persisted.ShippingAddress)
}

func TestRequestIDMakesRetryIdempotent(t *testing.T) {
	svc, carts, s := testService(t)
	mug := seedProduct(t, s, "Mug", 4.00)

	_, err := carts.AddItem(5, mug.ID, 2)
	require.NoError(t, err)

	reqID := uuid.NewString()
	first, err := svc.PlaceOrder(5, Request{RequestID: reqID})
	require.NoError(t, err)

	// Retry with the same id: same order back, nothing new created.
	second, err := svc.PlaceOrder(5, Request{RequestID: reqID})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, s.Orders(), 1)
}

func TestBadRequestIDRejected(t *testing.T) {
	svc, carts, s := testService(t)
	mug := seedProduct(t, s, "Mug", 4.00)

	_, err := carts.AddItem(6, mug.ID, 1)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(6, Request{RequestID: "not-a-uuid"})
	assert.ErrorIs(t, err, ErrBadRequestID)
	assert.Empty(t, s.Orders())
}

type failingResource struct{}

func (failingResource) Name() string          { return "orders.json" }
func (failingResource) Load() ([]byte, error) { return []byte("[]"), nil }
func (failingResource) Flush([]byte) error    { return errors.New("disk full") }

func TestPersistFailureLeavesCartIntact(t *testing.T) {
	res := database.OpenFiles(t.TempDir())
	res.Orders = failingResource{}
	s, err := store.Open(res)
	require.NoError(t, err)
	carts := cart.NewManager(s)
	svc := NewService(s, carts)

	mug := seedProduct(t, s, "Mug", 4.00)
	_, err = carts.AddItem(8, mug.ID, 2)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(8, Request{})
	assert.ErrorIs(t, err, store.ErrPersist)

	// Settle never ran: checkout stays retryable against the full cart.
	c := carts.Get(8)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 8.00, c.Total)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 24.98, roundCents(2*9.99+1*5.00))
	assert.Equal(t, 0.1, roundCents(0.10000000000000003))
	assert.Equal(t, 1.24, roundCents(1.235000001))
	assert.Equal(t, 1.23, roundCents(1.2349999))
}
