package database

import (
	"fmt"

	"github.com/sefazor/eventix-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres pool shared by every repository.
func NewDatabase(databaseURL string, debug bool) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Varsayılan kategoriler
var defaultCategories = []models.Category{
	{Name: "Music", Icon: "music"},
	{Name: "Sports", Icon: "trophy"},
	{Name: "Theatre", Icon: "masks"},
	{Name: "Comedy", Icon: "smile"},
	{Name: "Conference", Icon: "presentation"},
	{Name: "Festival", Icon: "tent"},
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Event{},
		&models.Order{},
	)
	if err != nil {
		return err
	}

	// Kategorileri veritabanına ekle (eğer yoksa)
	for _, category := range defaultCategories {
		var count int64
		if err := db.Model(&models.Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			category := category
			if err := db.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to add category %s: %w", category.Name, err)
			}
		}
	}

	return nil
}
