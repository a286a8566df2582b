package controllers

import (
	"errors"
	"net/http"

	"storefront/cart"
	"storefront/checkout"
	"storefront/store"
)

// API bundles the handlers' dependencies. Everything is injected at startup;
// there is no package-level state.
type API struct {
	Store     *store.Store
	Carts     *cart.Manager
	Checkout  *checkout.Service
	JWTSecret []byte
}

func New(s *store.Store, carts *cart.Manager, co *checkout.Service, jwtSecret []byte) *API {
	return &API{Store: s, Carts: carts, Checkout: co, JWTSecret: jwtSecret}
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrBadRequestID),
		errors.Is(err, cart.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
