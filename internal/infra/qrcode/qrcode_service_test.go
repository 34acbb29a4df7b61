package qrcode

import (
	"testing"

	"comerciojusto/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				QRCode: &config.QRCodeConfig{Size: tt.size, ErrorCorrectionLevel: tt.errorCorrectionLevel},
			}
			cfg.HTTP.BaseURL = "https://example.com"
			assert.NotNil(t, NewQRCodeService(cfg))
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	service := newQRCodeService("https://example.com", 256, "M")

	qrBytes, err := service.GenerateProductQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ProductURL(t *testing.T) {
	service := newQRCodeService("https://example.com/", 256, "M")
	id := uuid.MustParse("6f1c7a52-8d0e-4a8e-9f6b-2d3c4b5a6978")

	assert.Equal(t, "https://example.com/produto/6f1c7a52-8d0e-4a8e-9f6b-2d3c4b5a6978/", service.ProductURL(id))
}

func TestQRCodeService_ParseProductQR(t *testing.T) {
	service := newQRCodeService("https://example.com", 256, "M")
	id := uuid.New()

	tests := []struct {
		name    string
		data    string
		want    uuid.UUID
		wantErr string
	}{
		{name: "absolute url", data: service.ProductURL(id), want: id},
		{name: "bare path", data: "/produto/" + id.String() + "/", want: id},
		{name: "other page", data: "https://example.com/carrinho/", wantErr: "invalid QR code target"},
		{name: "bad id", data: "/produto/not-a-uuid/", wantErr: "failed to parse product ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseProductQR(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
