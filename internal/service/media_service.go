package service

import (
	"context"

	"github.com/sefazor/eventix-backend/internal/models"
	"go.uber.org/zap"
)

const DefaultUploadContentType = "image/jpeg"

type MediaService struct {
	signer UploadSigner
	logger *zap.Logger
}

func NewMediaService(signer UploadSigner, logger *zap.Logger) *MediaService {
	return &MediaService{
		signer: signer,
		logger: logger.Named("media_service"),
	}
}

func (s *MediaService) SignUpload(ctx context.Context, contentType string) (*models.UploadSignature, error) {
	if contentType == "" {
		contentType = DefaultUploadContentType
	}

	signature, err := s.signer.SignUpload(ctx, contentType)
	if err != nil {
		return nil, wrap(s.logger, "sign upload", err)
	}
	return signature, nil
}
