package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var baseTime = time.Date(2030, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Event{}, &models.Order{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{FirstName: "Ada", Surname: "Lovelace", Email: email, Role: models.RoleOrganizer}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Icon: name + "-icon"}
	require.NoError(t, db.Create(category).Error)
	return category
}

type eventOpt func(*models.Event)

func seedEvent(t *testing.T, db *gorm.DB, userID, categoryID uuid.UUID, name string, start time.Time, opts ...eventOpt) *models.Event {
	t.Helper()
	event := &models.Event{
		Name:        name,
		DateStart:   start,
		DateEnd:     start.Add(3 * time.Hour),
		City:        "London",
		Address:     "1 Main Street",
		Postcode:    "E1 6AN",
		Country:     "UK",
		CategoryID:  categoryID,
		Price:       models.PriceFree,
		Description: "description",
		UserID:      userID,
		Capacity:    100,
		LogoURL:     "https://img.example.com/logo.png",
	}
	for _, opt := range opts {
		opt(event)
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func withCity(city string) eventOpt {
	return func(e *models.Event) { e.City = city }
}

func withViews(n int) eventOpt {
	return func(e *models.Event) { e.ViewCount = n }
}
