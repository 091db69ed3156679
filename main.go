package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"movie_ticket_booking/config"
	"movie_ticket_booking/database"
	"movie_ticket_booking/helper"
	"movie_ticket_booking/router"
	"movie_ticket_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.GlobalErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
	}))

	database.ConnectDB()
	database.ConnectRedis()

	helper.StartShowtimeScheduler()
	helper.StartRatingsReconciler()

	if err := router.SetupRoutes(app); err != nil {
		log.Fatalf("route table compile failed: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + config.ConfigOr("PORT", "8002")); err != nil {
		log.Printf("server stopped: %v", err)
	}

	helper.StopShowtimeScheduler()
	helper.StopRatingsReconciler()
}
