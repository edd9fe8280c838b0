package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/sports-academy/backend/internal/config"
	"github.com/sports-academy/backend/internal/database"
	"github.com/sports-academy/backend/internal/payments"
	"github.com/sports-academy/backend/internal/routes"
	"github.com/sports-academy/backend/internal/store"
	"github.com/sports-academy/backend/internal/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()

	dataStore := store.NewMongoStore(client, cfg.DatabaseName)
	stripeClient := payments.NewStripeClient(cfg.PaymentSecretKey)
	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	router := routes.SetupRouter(dataStore, []byte(cfg.AccessTokenSecret), stripeClient, mailer)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	handler := c.Handler(router)

	log.Printf("sports is running on port: %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
