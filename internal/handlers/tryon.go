package handlers

import (
	"errors"
	"net/http"

	"ecothread_back_end/internal/catalog"
	"ecothread_back_end/internal/middleware"
	"ecothread_back_end/internal/models"
	"ecothread_back_end/internal/tryon"

	"github.com/gin-gonic/gin"
)

// ================== ESSAYAGE VIRTUEL ==================

// RenderTryOn compose le vêtement sur le clone de la session à l'angle demandé
func (h *Handlers) RenderTryOn(c *gin.Context) {
	product := catalog.ByID(c.Param("productId"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	var input struct {
		Angle string `json:"angle"`
	}
	// corps vide accepté : l'angle frontal est le défaut
	_ = c.ShouldBindJSON(&input)

	session := middleware.SessionID(c)

	uc, err := h.Clones.GetClone(c.Request.Context(), session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if uc == nil {
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": "Créez d'abord votre clone IA"})
		return
	}

	result, err := h.Renderer.Render(c.Request.Context(), session, uc, *product, models.Angle(input.Angle))
	switch {
	case errors.Is(err, tryon.ErrMissingAngle):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": "Photo manquante pour cet angle"})
		return
	case errors.Is(err, tryon.ErrInvalidAngle):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Angle inconnu (front, back ou threeQuarter)"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ResetTryOn jette le cache d'aperçu d'un produit pour la session
func (h *Handlers) ResetTryOn(c *gin.Context) {
	h.Renderer.Reset(middleware.SessionID(c), c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{"message": "Aperçu réinitialisé"})
}
