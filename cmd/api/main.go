package main

import (
	"log"

	"github.com/filadigital/painel-senhas/src/config"
	"github.com/filadigital/painel-senhas/src/db"
	"github.com/filadigital/painel-senhas/src/middleware"
	"github.com/filadigital/painel-senhas/src/routes"
	ws "github.com/filadigital/painel-senhas/src/websocket"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize database connection, migrations and seed data
	db.Init()

	hub := ws.NewHub()
	go hub.Run()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB, hub)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
