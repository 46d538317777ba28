package routes

import (
	"ecothread_back_end/internal/handlers"
	"ecothread_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.Session())

	// Auth locale
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", middleware.AuthRequired(), h.Me)
	}

	// Catalogue
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)

	// Wizard de clone + clone persisté
	cloneGroup := api.Group("/clone")
	{
		cloneGroup.GET("", h.GetClone)
		cloneGroup.DELETE("", h.DeleteClone)
		cloneGroup.POST("/wizard", h.StartWizard)
		cloneGroup.GET("/wizard", h.WizardState)
		cloneGroup.POST("/wizard/gender", h.SetWizardGender)
		cloneGroup.POST("/wizard/back", h.WizardBack)
		cloneGroup.POST("/wizard/images/:angle", h.UploadWizardImage)
		cloneGroup.DELETE("/wizard/images/:angle", h.RemoveWizardImage)
		cloneGroup.POST("/wizard/finish", h.FinishWizard)
	}

	// Essayage virtuel
	api.POST("/tryon/:productId", h.RenderTryOn)
	api.DELETE("/tryon/:productId", h.ResetTryOn)

	// Panier
	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", h.GetCart)
		cartGroup.POST("", h.AddToCart)
		cartGroup.DELETE("/:productId", h.RemoveFromCart)
	}

	// Checkout (OptionalAuth : la commande se rattache au compte si token présent)
	checkoutGroup := api.Group("/checkout")
	checkoutGroup.Use(middleware.OptionalAuth())
	{
		checkoutGroup.GET("", h.CheckoutState)
		checkoutGroup.POST("/open", h.OpenCheckout)
		checkoutGroup.POST("/begin", h.BeginCheckout)
		checkoutGroup.POST("/back", h.CheckoutBack)
		checkoutGroup.POST("/complete", h.CompleteCheckout)
	}

	// Mes commandes
	api.GET("/orders", middleware.AuthRequired(), h.MyOrders)

	// Console staff (accès par obscurité, pas de rôle)
	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/orders", h.AdminListOrders)
		adminGroup.PATCH("/orders/:id/status", h.AdminUpdateStatus)
		adminGroup.GET("/orders/:id/qrcode", h.AdminOrderQR)
	}
}
