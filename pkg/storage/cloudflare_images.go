package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/sefazor/eventix-backend/internal/models"
)

const ProviderImages = "cloudflare-images"

type CloudflareImages struct {
	accountID   string
	apiToken    string
	baseURL     string
	client      *http.Client
	accountHash string // Cloudflare Images URL'leri için özel hash değeri
	now         func() time.Time
}

const (
	VariantPublic    = "public"    // Orijinal boyut
	VariantThumbnail = "thumbnail" // Thumbnail boyut (örn. 100x100)
)

// directUploadResponse is the body of POST /images/v2/direct_upload.
type directUploadResponse struct {
	Success bool `json:"success"`
	Result  struct {
		ID        string `json:"id"`
		UploadURL string `json:"uploadURL"`
	} `json:"result"`
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func NewCloudflareImages(accountID, token, accountHash string) *CloudflareImages {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &CloudflareImages{
		accountID:   accountID,
		apiToken:    token,
		baseURL:     "https://api.cloudflare.com/client/v4",
		client:      client,
		accountHash: accountHash,
		now:         time.Now,
	}
}

// SignUpload reserves a one-time direct creator upload URL. The browser
// POSTs the file as multipart field "file" to the returned URL.
func (c *CloudflareImages) SignUpload(ctx context.Context, contentType string) (*models.UploadSignature, error) {
	expiresAt := c.now().Add(uploadExpiry).UTC().Truncate(time.Second)

	formBuf := &bytes.Buffer{}
	writer := multipart.NewWriter(formBuf)
	if err := writer.WriteField("requireSignedURLs", "false"); err != nil {
		return nil, fmt.Errorf("failed to add form field: %w", err)
	}
	if err := writer.WriteField("expiry", expiresAt.Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("failed to add form field: %w", err)
	}
	// Beklenen içerik tipi görselin metadata'sında saklanır
	if contentType != "" {
		metadata, err := json.Marshal(map[string]string{"contentType": contentType})
		if err != nil {
			return nil, fmt.Errorf("failed to encode metadata: %w", err)
		}
		if err := writer.WriteField("metadata", string(metadata)); err != nil {
			return nil, fmt.Errorf("failed to add form field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	cloudflareURL := fmt.Sprintf("%s/accounts/%s/images/v2/direct_upload", c.baseURL, c.accountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cloudflareURL, formBuf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("cloudflare returned non-OK status: %d, response: %s", resp.StatusCode, string(bodyBytes))
	}

	var response directUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !response.Success {
		return nil, fmt.Errorf("cloudflare returned error: %v", response.Errors)
	}

	return &models.UploadSignature{
		Provider:  ProviderImages,
		UploadURL: response.Result.UploadURL,
		Method:    http.MethodPost,
		Key:       response.Result.ID,
		PublicURL: c.GetPublicURL(response.Result.ID),
		ExpiresAt: expiresAt,
	}, nil
}

func (c *CloudflareImages) GetPublicURL(imageID string) string {
	return c.GetVariantURL(imageID, VariantPublic)
}

func (c *CloudflareImages) GetVariantURL(imageID string, variant string) string {
	return fmt.Sprintf("https://imagedelivery.net/%s/%s/%s", c.accountHash, imageID, variant)
}

func (c *CloudflareImages) GetThumbnailURL(imageID string) string {
	return c.GetVariantURL(imageID, VariantThumbnail)
}
