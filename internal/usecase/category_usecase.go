package usecase

import (
	"context"

	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/service"
)

type CategoryUseCase struct {
	categoryService *service.CategoryService
}

func NewCategoryUseCase(categoryService *service.CategoryService) *CategoryUseCase {
	return &CategoryUseCase{
		categoryService: categoryService,
	}
}

func (u *CategoryUseCase) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	return u.categoryService.Create(ctx, req.Name, req.Icon)
}

func (u *CategoryUseCase) List(ctx context.Context) ([]models.Category, error) {
	return u.categoryService.List(ctx)
}
