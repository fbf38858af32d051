package database

import (
	"fmt"
	"log"
	"os"

	"undangan-app/internal/domain/billing"
	"undangan-app/internal/domain/plans"
	"undangan-app/internal/domain/projects"
	"undangan-app/internal/domain/rsvp"
	"undangan-app/internal/domain/templates"
	"undangan-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	// TranslateError so unique-index violations surface as
	// gorm.ErrDuplicatedKey instead of driver-specific errors.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&templates.Template{},
		&plans.Plan{},
		&projects.Project{},
		&rsvp.Rsvp{},

		// money
		&billing.Payment{},
		&billing.ResellerEarning{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
