package handlers

import (
	"net/http"

	"ecothread_back_end/internal/catalog"
	"ecothread_back_end/internal/middleware"
	"ecothread_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// ================== PANIER ==================

func cartResponse(items []models.CartItem) gin.H {
	return gin.H{
		"items": items,
		"total": models.CartTotal(items),
	}
}

func (h *Handlers) GetCart(c *gin.Context) {
	items, err := h.Carts.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartResponse(items))
}

// AddToCart incrémente la ligne si le produit y est déjà
func (h *Handlers) AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := catalog.ByID(input.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	items, err := h.Carts.Add(c.Request.Context(), middleware.SessionID(c), *product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartResponse(items))
}

// RemoveFromCart supprime la ligne entière ; no-op si absente
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	items, err := h.Carts.Remove(c.Request.Context(), middleware.SessionID(c), c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartResponse(items))
}
