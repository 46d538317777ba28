package handlers

import (
	"net/http"

	"ecothread_back_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

// ================== CATALOGUE ==================

// ListProducts filtre par genre et catégorie ("All" ou vide = tout)
func (h *Handlers) ListProducts(c *gin.Context) {
	gender := c.Query("gender")
	category := c.DefaultQuery("category", "All")

	products := catalog.Filter(gender, category)
	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"categories": catalog.Categories,
	})
}

func (h *Handlers) GetProduct(c *gin.Context) {
	product := catalog.ByID(c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}
