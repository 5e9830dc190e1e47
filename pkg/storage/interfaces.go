package storage

import (
	"context"

	"github.com/sefazor/eventix-backend/internal/models"
)

// UploadSigner hands out short-lived credentials for a direct browser upload.
type UploadSigner interface {
	SignUpload(ctx context.Context, contentType string) (*models.UploadSignature, error)
}
