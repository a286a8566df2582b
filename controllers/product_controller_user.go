package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/models"
)

// GetProducts serves the public catalog. Optional query filters: id (single
// product), category, keywords (matches name, description or keywords,
// case-insensitive), and page+limit pagination.
func (a *API) GetProducts(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		product, err := a.Store.Product(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": product})
		return
	}

	products := a.Store.Products()

	if category := c.Query("category"); category != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if keyword := strings.ToLower(c.Query("keywords")); keyword != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if matchesSearch(p, keyword) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if c.Query("page") != "" && c.Query("limit") != "" {
		page, err1 := strconv.Atoi(c.Query("page"))
		limit, err2 := strconv.Atoi(c.Query("limit"))
		if err1 != nil || err2 != nil || page < 1 || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination"})
			return
		}
		products = pageOf(products, page, limit)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": products})
}

func matchesSearch(p models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, k := range p.Keywords {
		if strings.Contains(strings.ToLower(k), term) {
			return true
		}
	}
	return false
}

func pageOf(products []models.Product, page, size int) []models.Product {
	start := (page - 1) * size
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
