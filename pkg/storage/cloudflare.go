package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	internalConfig "github.com/sefazor/eventix-backend/internal/config"
	"github.com/sefazor/eventix-backend/internal/models"
)

const (
	ProviderR2 = "r2"

	uploadExpiry = 15 * time.Minute
	uploadPrefix = "events/"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// CloudflareStorage presigns PUT requests against an R2 bucket.
type CloudflareStorage struct {
	presigner *s3.PresignClient
	bucket    string
	publicURL string
	now       func() time.Time
}

func NewCloudflareStorage(ctx context.Context, cfg *internalConfig.Config) (*CloudflareStorage, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2.AccountID))
		o.UsePathStyle = true
	})

	return &CloudflareStorage{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.R2.Bucket,
		publicURL: strings.TrimSuffix(cfg.R2.PublicURL, "/"),
		now:       time.Now,
	}, nil
}

func (s *CloudflareStorage) SignUpload(ctx context.Context, contentType string) (*models.UploadSignature, error) {
	key := uploadPrefix + uuid.NewString() + extensions[contentType]

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(uploadExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign R2 upload: %w", err)
	}

	headers := make(map[string]string, len(req.SignedHeader))
	for name, values := range req.SignedHeader {
		if strings.EqualFold(name, "host") || len(values) == 0 {
			continue
		}
		headers[name] = values[0]
	}

	return &models.UploadSignature{
		Provider:  ProviderR2,
		UploadURL: req.URL,
		Method:    req.Method,
		Key:       key,
		PublicURL: s.publicURL + "/" + key,
		Headers:   headers,
		ExpiresAt: s.now().Add(uploadExpiry).UTC(),
	}, nil
}
