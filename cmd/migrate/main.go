package main

import (
	"github.com/sananasgarov/NummixAzBackend/config"
	"github.com/sananasgarov/NummixAzBackend/models"

	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectDB()
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.PasswordReset{},
		&models.TeamMember{},
		&models.BlogPost{},
	); err != nil {
		logrus.Fatalf("AutoMigrate failed: %v", err)
	}
	logrus.Info("migration completed")
}
