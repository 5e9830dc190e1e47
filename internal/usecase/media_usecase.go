package usecase

import (
	"context"

	"github.com/sefazor/eventix-backend/internal/models"
	"github.com/sefazor/eventix-backend/internal/service"
)

type MediaUseCase struct {
	mediaService *service.MediaService
}

func NewMediaUseCase(mediaService *service.MediaService) *MediaUseCase {
	return &MediaUseCase{
		mediaService: mediaService,
	}
}

func (u *MediaUseCase) SignUploadImage(ctx context.Context, contentType string) (*models.UploadSignature, error) {
	return u.mediaService.SignUpload(ctx, contentType)
}
