package service

import (
	"context"

	"github.com/sefazor/eventix-backend/internal/models"
	"go.uber.org/zap"
)

type CategoryService struct {
	categoryRepo CategoryStore
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo CategoryStore, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger.Named("category_service"),
	}
}

func (s *CategoryService) Create(ctx context.Context, name, icon string) (*models.Category, error) {
	category := &models.Category{Name: name, Icon: icon}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, wrap(s.logger, "create category", err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, wrap(s.logger, "list categories", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}
