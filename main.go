package main

import (
	"log"

	"nexus/config"
	authController "nexus/controllers/auth"
	"nexus/database"
	adminRoutes "nexus/routers/adminRoutes"
	authRoutes "nexus/routers/authRoutes"
	marketRoutes "nexus/routers/marketRoutes"
	walletRoutes "nexus/routers/walletRoutes"
	"nexus/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	authController.SetCost()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // base64 receipt uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the built web client
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	marketRoutes.SetupMarketRoutes(app)

	// Keep the ticker cache warm
	utils.StartMarketScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
