package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for product pages.
type QRCodeService interface {
	// GenerateProductQR returns a PNG that encodes the public product URL.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)

	// ParseProductQR extracts the product id from decoded QR content.
	ParseProductQR(qrData string) (uuid.UUID, error)
}
