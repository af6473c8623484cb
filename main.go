package main

import (
	"log"

	"wellnest/config"
	"wellnest/database"
	authRoutes "wellnest/routers/authRoutes"
	communityRoutes "wellnest/routers/communityRoutes"
	courseRoutes "wellnest/routers/courseRoutes"
	membershipRoutes "wellnest/routers/membershipRoutes"
	userRoutes "wellnest/routers/userRoutes"
	"wellnest/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	communityRoutes.SetupCommunityRoutes(app)
	membershipRoutes.SetupMembershipRoutes(app)

	utils.InitializeMembershipScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
