package handlers

import (
	"errors"
	"net/http"

	"ecothread_back_end/internal/checkout"
	"ecothread_back_end/internal/middleware"
	"ecothread_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// ================== CHECKOUT ==================

func checkoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le panier est vide"})
	case errors.Is(err, checkout.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom complet, email et adresse sont requis"})
	case errors.Is(err, checkout.ErrWrongState):
		c.JSON(http.StatusConflict, gin.H{"error": "Transition non autorisée depuis cet état"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handlers) CheckoutState(c *gin.Context) {
	state, err := h.Checkout.State(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// OpenCheckout (ré)ouvre le tunnel : toujours à l'étape panier
func (h *Handlers) OpenCheckout(c *gin.Context) {
	state, err := h.Checkout.Open(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *Handlers) BeginCheckout(c *gin.Context) {
	state, err := h.Checkout.Begin(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *Handlers) CheckoutBack(c *gin.Context) {
	state, err := h.Checkout.Back(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// CompleteCheckout valide la livraison et fige la commande
func (h *Handlers) CompleteCheckout(c *gin.Context) {
	var input struct {
		FullName string `json:"fullName" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Address  string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipping := models.ShippingAddress{
		FullName: input.FullName,
		Email:    input.Email,
		Address:  input.Address,
	}

	// user_id n'est posé que si un token valide accompagne la requête (invité sinon)
	order, err := h.Checkout.Complete(c.Request.Context(), middleware.SessionID(c), c.GetString("user_id"), shipping)
	if err != nil {
		checkoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}
