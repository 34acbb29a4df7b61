// Package qrcode renders share codes that point at public product pages.
package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"comerciojusto/config"
	"comerciojusto/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const productPathPrefix = "/produto/"

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(cfg.HTTP.BaseURL, size, level)
}

func newQRCodeService(baseURL string, size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimSuffix(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ProductURL is the absolute URL encoded in a product QR code.
func (s *qrcodeService) ProductURL(productID uuid.UUID) string {
	return s.baseURL + productPathPrefix + productID.String() + "/"
}

// GenerateProductQR returns a PNG encoding the product page URL.
func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProductURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProductQR accepts either an absolute product URL or a bare path.
func (s *qrcodeService) ParseProductQR(qrData string) (uuid.UUID, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse QR code data: %w", err)
	}

	path := u.Path
	if !strings.HasPrefix(path, productPathPrefix) {
		return uuid.Nil, fmt.Errorf("invalid QR code target: %s", path)
	}

	productID, err := uuid.Parse(strings.Trim(strings.TrimPrefix(path, productPathPrefix), "/"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse product ID: %w", err)
	}

	return productID, nil
}
