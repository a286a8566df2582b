package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/models"
)

func (a *API) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if product.Price < 0 || product.StockQuantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price or stock"})
		return
	}

	product.ID = 0 // store assigns the id
	if err := a.Store.SaveProduct(&product); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product created", "product": product})
}

func (a *API) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if product.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required for update"})
		return
	}
	if product.Price < 0 || product.StockQuantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price or stock"})
		return
	}

	if err := a.Store.SaveProduct(&product); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (a *API) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := a.Store.DeleteProduct(id); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "id": id})
}

func (a *API) GetProductsAdmin(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination"})
		return
	}

	products := pageOf(a.Store.Products(), page, pageSize)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Fetch products success",
		"count":    len(products),
		"products": products,
	})
}
