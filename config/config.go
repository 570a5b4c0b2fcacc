package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Asif-Uchchas/qalby/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate creates the schema, including the composite unique indexes the
// upserts key on. Shared with the test harness, which runs it against SQLite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DailyLog{},
		&models.PrayerEntry{},
		&models.QuranProgress{},
		&models.JuzCompletion{},
		&models.Goal{},
		&models.GoalEntry{},
		&models.DuaFavorite{},
		&models.DhikrSession{},
		&models.PlannerTask{},
		&models.Reflection{},
	)
}
