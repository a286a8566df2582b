package models

import (
	"sort"

	json "github.com/goccy/go-json"
)

// CartItem is a snapshot of a product's sale-relevant fields taken when the
// line was added. A later price change on the product must not move lines
// already in a cart, so there is no live reference back to Product.
type CartItem struct {
	ProductID   int     `json:"productId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl"`
}

// Cart keys its lines by product id: adding a product already in the cart
// replaces the line. Total is recomputed after every structural change, never
// on read. Callers serialize mutations per user (see cart.Manager).
type Cart struct {
	UserID int              `json:"userId"`
	Items  map[int]CartItem `json:"items"`
	Total  float64          `json:"total"`
}

func NewCart(userID int) Cart {
	return Cart{UserID: userID, Items: make(map[int]CartItem)}
}

func (c *Cart) AddItem(item CartItem) {
	if c.Items == nil {
		c.Items = make(map[int]CartItem)
	}
	c.Items[item.ProductID] = item
	c.Recalculate()
}

func (c *Cart) RemoveItem(productID int) {
	delete(c.Items, productID)
	c.Recalculate()
}

func (c *Cart) SetQuantity(productID, quantity int) bool {
	item, ok := c.Items[productID]
	if !ok {
		return false
	}
	item.Quantity = quantity
	c.Items[productID] = item
	c.Recalculate()
	return true
}

func (c *Cart) Clear() {
	c.Items = make(map[int]CartItem)
	c.Total = 0
}

// Recalculate re-sums price*quantity over all lines. Always a full pass so
// the cached total cannot drift from the lines.
func (c *Cart) Recalculate() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.Total = total
}

// SortedItems returns the lines ordered by product id.
func (c *Cart) SortedItems() []CartItem {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items
}

// cartJSON is the wire shape: items as an array, keyed form rebuilt on read.
type cartJSON struct {
	UserID int        `json:"userId"`
	Items  []CartItem `json:"items"`
	Total  float64    `json:"total"`
}

func (c Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartJSON{UserID: c.UserID, Items: c.SortedItems(), Total: c.Total})
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var raw cartJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.UserID = raw.UserID
	c.Items = make(map[int]CartItem, len(raw.Items))
	for _, item := range raw.Items {
		c.Items[item.ProductID] = item
	}
	c.Recalculate()
	return nil
}
