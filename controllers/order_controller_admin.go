package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (a *API) GetOrdersAdmin(c *gin.Context) {
	orders := a.Store.Orders()
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": orders})
}

func (a *API) GetOrderByIDAdmin(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := a.Store.Order(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": order})
}

// UpdateOrderStatus sets the order's status. Status is the only field an
// order accepts changes to after creation (besides the one-time shipping
// attach); the value set is an open string enum.
func (a *API) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := a.Store.Order(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	order.Status = body.Status
	if err := a.Store.SaveOrder(&order); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "data": order})
}

// GetUsersAdmin lists accounts with the customer role.
func (a *API) GetUsersAdmin(c *gin.Context) {
	users := a.Store.Users()
	customers := make([]gin.H, 0, len(users))
	for _, u := range users {
		if u.Role == "user" {
			customers = append(customers, gin.H{"id": u.ID, "email": u.Email, "role": u.Role})
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": customers})
}
