package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/service"
)

type UserUseCase struct {
	userService *service.UserService
}

func NewUserUseCase(userService *service.UserService) *UserUseCase {
	return &UserUseCase{
		userService: userService,
	}
}

func (u *UserUseCase) Create(ctx context.Context, req models.CreateUserRequest) (*models.AuthResponse, error) {
	return u.userService.Create(ctx, service.CreateUserInput{
		FirstName: req.FirstName,
		Surname:   req.Surname,
		Email:     req.Email,
	})
}

func (u *UserUseCase) Delete(ctx context.Context, id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, service.ErrUserNotFound
	}
	return u.userService.Delete(ctx, userID)
}

func (u *UserUseCase) SelectByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.userService.SelectByEmail(ctx, email)
}
