package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/repository"
	"go.uber.org/zap"
)

type CreateUserInput struct {
	FirstName string
	Surname   string
	Email     string
}

type UserService struct {
	userRepo UserStore
	tokens   TokenIssuer
	logger   *zap.Logger
}

func NewUserService(userRepo UserStore, tokens TokenIssuer, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.Named("user_service"),
	}
}

// Create signs a user up and issues their first token. Signup always
// yields a plain user; other roles are granted outside the API.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.AuthResponse, error) {
	user := &models.User{
		FirstName: in.FirstName,
		Surname:   in.Surname,
		Email:     normalizeEmail(in.Email),
		Role:      models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, wrap(s.logger, "create user", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, wrap(s.logger, "generate token", err)
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, wrap(s.logger, "load user", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, wrap(s.logger, "delete user", err)
	}

	return user, nil
}

func (s *UserService) SelectByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, wrap(s.logger, "load user by email", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
