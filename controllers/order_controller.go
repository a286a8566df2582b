package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/checkout"
	"storefront/models"
	"storefront/store"
)

// Checkout converts the caller's cart into an order. The body may carry an
// optional shipping address and an optional UUID requestId that makes
// retries idempotent.
func (a *API) Checkout(c *gin.Context) {
	var body struct {
		RequestID       string                  `json:"requestId"`
		ShippingAddress *models.ShippingAddress `json:"shippingAddress"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := c.GetInt("userId")
	order, err := a.Checkout.PlaceOrder(userID, checkout.Request{
		RequestID: body.RequestID,
		Shipping:  body.ShippingAddress,
	})
	if err != nil {
		// The order may have been persisted before a later flush failed;
		// report the failure but hand back what was placed.
		if errors.Is(err, store.ErrPersist) && order.ID != 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "order": order})
			return
		}
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Checkout success", "order": order})
}

func (a *API) GetOrders(c *gin.Context) {
	userID := c.GetInt("userId")
	orders := a.Store.UserOrders(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": orders})
}
