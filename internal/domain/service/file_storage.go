package service

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// FileStorage keeps uploaded files (certificates, logos, product images).
type FileStorage interface {
	// Save writes the content under key and returns the key actually used.
	Save(ctx context.Context, key string, r io.Reader, contentType string) (string, error)

	// Open returns a reader for a stored file. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes a stored file. Missing keys are ignored.
	Delete(ctx context.Context, key string) error
}

// NewFileKey builds a collision-free object key under prefix keeping the file extension.
func NewFileKey(prefix, filename string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
}
