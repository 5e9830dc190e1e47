package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// QRService, bilet QR kodlarını üretir
type QRService struct {
	prefix string // QR içeriğinin öneki (örn: "eventix:order:")
}

func NewQRService(prefix string) *QRService {
	return &QRService{
		prefix: prefix,
	}
}

// Content is the text encoded into a ticket's QR code.
func (s *QRService) Content(code string) string {
	return s.prefix + code
}

// GenerateQRCode, verilen kod için PNG formatında QR kod bayt dizisi oluşturur
func (s *QRService) GenerateQRCode(code string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(s.Content(code), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
