package handlers

import (
	"errors"
	"io"
	"net/http"

	"ecothread_back_end/internal/clone"
	"ecothread_back_end/internal/middleware"
	"ecothread_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// ================== WIZARD DE CLONE ==================

func wizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, clone.ErrNoWizard):
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucun wizard en cours, relancez la création"})
	case errors.Is(err, clone.ErrInvalidGender):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Genre invalide (Men ou Women)"})
	case errors.Is(err, clone.ErrInvalidAngle):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Angle inconnu (front, back ou threeQuarter)"})
	case errors.Is(err, clone.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le fichier envoyé n'est pas une image lisible"})
	case errors.Is(err, clone.ErrFrontRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "La photo frontale est requise"})
	case errors.Is(err, clone.ErrFinishInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Création du clone déjà en cours"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handlers) StartWizard(c *gin.Context) {
	view := h.Clones.StartWizard(middleware.SessionID(c))
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) WizardState(c *gin.Context) {
	view, err := h.Clones.State(middleware.SessionID(c))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) SetWizardGender(c *gin.Context) {
	var input struct {
		Gender string `json:"gender" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.Clones.SetGender(middleware.SessionID(c), input.Gender)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) WizardBack(c *gin.Context) {
	view, err := h.Clones.Back(middleware.SessionID(c))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UploadWizardImage reçoit la photo en multipart (champ "image")
func (h *Handlers) UploadWizardImage(c *gin.Context) {
	angle := models.Angle(c.Param("angle"))

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champ 'image' manquant"})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lecture du fichier impossible"})
		return
	}

	view, err := h.Clones.CaptureImage(middleware.SessionID(c), angle, raw)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) RemoveWizardImage(c *gin.Context) {
	angle := models.Angle(c.Param("angle"))

	view, err := h.Clones.RemoveImage(middleware.SessionID(c), angle)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) FinishWizard(c *gin.Context) {
	uc, err := h.Clones.Finish(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"clone": uc})
}

// ================== CLONE PERSISTÉ ==================

func (h *Handlers) GetClone(c *gin.Context) {
	uc, err := h.Clones.GetClone(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if uc == nil {
		c.JSON(http.StatusOK, gin.H{"clone": nil, "active": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clone": uc, "active": uc.IsActive()})
}

func (h *Handlers) DeleteClone(c *gin.Context) {
	if err := h.Clones.ClearClone(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Clone supprimé"})
}
