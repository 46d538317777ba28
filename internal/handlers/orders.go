package handlers

import (
	"errors"
	"net/http"

	"ecothread_back_end/internal/orders"
	"ecothread_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// ================== MES COMMANDES ==================

// MyOrders liste les commandes du compte connecté, plus récentes d'abord
func (h *Handlers) MyOrders(c *gin.Context) {
	list, err := h.Ledger.ListForUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// ================== CONSOLE STAFF ==================

func (h *Handlers) AdminListOrders(c *gin.Context) {
	list, err := h.Ledger.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// AdminUpdateStatus assigne librement l'un des quatre statuts connus
func (h *Handlers) AdminUpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Ledger.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	switch {
	case errors.Is(err, orders.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
		return
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// notification best-effort, le changement de statut n'attend pas l'email
	if order.ShippingAddress.Email != "" {
		go utils.SendOrderStatusEmail(*order, order.Status)
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// AdminOrderQR sert le QR du numéro de suivi en PNG
func (h *Handlers) AdminOrderQR(c *gin.Context) {
	order, err := h.Ledger.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, orders.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	png, err := utils.TrackingQRPNG(order.TrackingNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Génération QR impossible"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
