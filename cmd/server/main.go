package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/chesslink/boardsync/internal/controller"
	"github.com/chesslink/boardsync/internal/middleware"
	"github.com/chesslink/boardsync/internal/service"
)

func main() {
	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     envOr("ALLOW_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Board-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	sessionManager := service.NewSessionManager()
	sessionService := service.NewSessionService(sessionManager)

	// Initialize controllers
	sessionController := controller.NewSessionController(sessionService)
	wsController := controller.NewWebSocketController(sessionService)

	// Set up WebSocket routes: sensor boards stream placement snapshots in,
	// reconciled state flows back out.
	app.Use("/ws/*", middleware.EnsureBoardID())
	app.Get("/ws/session/:sessionId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsureBoardID())

	sessionRoutes := api.Group("/session")
	sessionRoutes.Post("/create", sessionController.CreateSession)
	sessionRoutes.Post("/:sessionId/placement", sessionController.UpdatePlacement)
	sessionRoutes.Post("/:sessionId/start", sessionController.StartSession)
	sessionRoutes.Get("/:sessionId/board", sessionController.GetBoardText)
	sessionRoutes.Get("/:sessionId", sessionController.GetSessionState)

	log.Fatal(app.Listen(":" + envOr("PORT", "3000")))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
