package models

const OrderStatusPending = "PENDING"

// Order is immutable after creation except for Status and the one-time
// shipping-address attachment. Items are copies of the cart lines at checkout
// time; they share nothing with the cart that produced them.
type Order struct {
	ID              int              `json:"id"`
	UserID          int              `json:"userId"`
	Items           []CartItem       `json:"items"`
	Total           float64          `json:"total"`
	Status          string           `json:"status"`
	OrderDate       string           `json:"orderDate"`
	ShippingAddress *ShippingAddress `json:"shippingAddress"`
}

type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}
