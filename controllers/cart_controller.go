package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (a *API) GetCart(c *gin.Context) {
	userID := c.GetInt("userId")
	cart := a.Carts.Get(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": cart})
}

func (a *API) AddToCart(c *gin.Context) {
	var body struct {
		ProductID int `json:"productId" binding:"required"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID := c.GetInt("userId")
	cart, err := a.Carts.AddItem(userID, body.ProductID, body.Quantity)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "data": cart})
}

func (a *API) UpdateCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
		return
	}

	userID := c.GetInt("userId")
	cart, err := a.Carts.UpdateQuantity(userID, productID, body.Quantity)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "data": cart})
}

func (a *API) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	userID := c.GetInt("userId")
	cart, err := a.Carts.Remove(userID, productID)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "data": cart})
}
