package main

import (
	"context"
	"log"
	"os"
	"strings"

	"ecothread_back_end/internal/auth"
	"ecothread_back_end/internal/cart"
	"ecothread_back_end/internal/checkout"
	"ecothread_back_end/internal/clone"
	"ecothread_back_end/internal/config"
	"ecothread_back_end/internal/database"
	"ecothread_back_end/internal/handlers"
	"ecothread_back_end/internal/orders"
	"ecothread_back_end/internal/routes"
	"ecothread_back_end/internal/services"
	"ecothread_back_end/internal/store"
	"ecothread_back_end/internal/tryon"
	"ecothread_back_end/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseRedis()

	blobs := store.NewRedisStore(database.Redis)

	gemini, err := services.NewGeminiClient(context.Background())
	if err != nil {
		log.Fatalf("❌ Impossible d'initialiser Gemini : %v", err)
	}

	// nil si MinIO n'est pas configuré : le renderer renvoie alors des data URI
	images := services.ConnectMinio()

	var imageStore tryon.ImageStore
	if images != nil {
		imageStore = images
	}

	clones := clone.NewManager(blobs, gemini)
	renderer := tryon.NewRenderer(gemini, imageStore, services.EncodeDataURI)
	carts := cart.NewManager(blobs)
	ledger := orders.NewLedger(blobs)
	gateway := auth.NewGateway(blobs)
	machine := checkout.NewMachine(blobs, carts, clones, ledger, utils.SendOrderConfirmationEmail)

	h := handlers.New(gateway, clones, renderer, carts, machine, ledger)

	r := gin.Default()
	r.Use(cors.New(corsConfig()))
	routes.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur EcoThread lancé sur le port", port)
	r.Run(":" + port)
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}

	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Session-ID")
	cfg.ExposeHeaders = append(cfg.ExposeHeaders, "X-Session-ID")
	cfg.AllowCredentials = true
	return cfg
}
