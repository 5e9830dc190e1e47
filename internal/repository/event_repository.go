package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"gorm.io/gorm"
)

// EventFilter narrows an event listing. Every set field must match.
type EventFilter struct {
	Name       string
	City       string
	CategoryID *uuid.UUID
	From       time.Time
	Offset     int
	Limit      int
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	result := r.db.WithContext(ctx).Create(event)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return event, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

// GetUpcomingByID only finds the event while it has not started before from.
func (r *EventRepository) GetUpcomingByID(ctx context.Context, id uuid.UUID, from time.Time) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Where("id = ? AND date_start >= ?", id, from).
		First(&event).Error
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViewCount bumps the counter in a single UPDATE so concurrent
// readers never overwrite each other.
func (r *EventRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) List(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Scopes(filter.apply).
		Preload("Category").
		Order("date_start ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&events).Error
	return events, err
}

func (r *EventRepository) Count(ctx context.Context, filter EventFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Scopes(filter.apply).
		Count(&count).Error
	return count, err
}

func (r *EventRepository) Trending(ctx context.Context, from time.Time, limit int) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("date_start >= ?", from).
		Order("view_count DESC").
		Order("date_start ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *EventRepository) Cities(ctx context.Context, from time.Time) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("date_start >= ?", from).
		Distinct("city").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}
	sort.Strings(cities)
	return cities, nil
}

func (f EventFilter) apply(db *gorm.DB) *gorm.DB {
	db = db.Where("date_start >= ?", f.From)
	if f.Name != "" {
		db = db.Where("LOWER(name) LIKE ? ESCAPE '\\'", containsPattern(f.Name))
	}
	if f.City != "" {
		db = db.Where("LOWER(city) LIKE ? ESCAPE '\\'", containsPattern(f.City))
	}
	if f.CategoryID != nil {
		db = db.Where("category_id = ?", *f.CategoryID)
	}
	return db
}

// LIKE joker karakterleri düz metin olarak aranır
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
