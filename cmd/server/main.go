package main

import (
	"log"
	"os"

	"olyncha_back_end/internal/auth"
	"olyncha_back_end/internal/cart"
	"olyncha_back_end/internal/config"
	"olyncha_back_end/internal/database"
	"olyncha_back_end/internal/handlers"
	"olyncha_back_end/internal/orders"
	"olyncha_back_end/internal/routes"
	"olyncha_back_end/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("⚠️ STRIPE_SECRET_KEY absent — paiement carte désactivé")
	} else {
		log.Println("✅ Stripe initialisé")
	}

	database.ConnectDatabases()
	defer database.CloseScylla()

	// recherche produits : indexe le catalogue si Elastic est là
	services.IndexCatalog()

	// stores du cœur métier, branchés sur le stockage durable
	var orderRepo orders.Repository = orders.NewMemoryRepository()
	if database.Scylla != nil {
		orderRepo = orders.NewScyllaRepository(database.Scylla)
		log.Println("✅ Commandes archivées dans ScyllaDB")
	}
	handlers.Init(
		cart.NewStore(database.KV, database.Notifier),
		auth.NewStore(database.KV),
		orderRepo,
	)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://olyncha.com"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-Id"},
		AllowCredentials: true,
	}))
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Olyncha lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Erreur serveur:", err)
	}
}
