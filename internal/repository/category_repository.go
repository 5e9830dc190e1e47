package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return translate(r.db.WithContext(ctx).Create(category).Error)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// FindByName returns the first category whose name contains name, ignoring case.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\'", containsPattern(name)).
		Order("name ASC").
		First(&category).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}
