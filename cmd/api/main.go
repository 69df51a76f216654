package main

import (
	"os"

	"github.com/sananasgarov/NummixAzBackend/config"
	"github.com/sananasgarov/NummixAzBackend/handlers"
	"github.com/sananasgarov/NummixAzBackend/routes"
	"github.com/sananasgarov/NummixAzBackend/utils/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := config.Validate(); err != nil {
		logrus.Fatalf("configuration: %v", err)
	}

	config.ConnectDB()
	handlers.InitMailer(mailer.NewClient(config.LoadEmailConfig()))

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("API running on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		logrus.Fatal(err)
	}
}
