package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mkim2178/My-Jet/config"
	"github.com/mkim2178/My-Jet/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client := config.ConnectDB(cfg.MongoURI)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Println("Error disconnecting from MongoDB:", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	users := config.GetCollection(client, cfg.Database, "users")
	tickets := config.GetCollection(client, cfg.Database, "tickets")
	if err := config.EnsureIndexes(ctx, users, tickets); err != nil {
		log.Fatal("Error creating indexes:", err)
	}

	r := gin.Default()
	router.UserRoutes(r, client, cfg.Database, cfg.SecretKey)
	router.TicketRoutes(r, client, cfg.Database, cfg.SecretKey)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
