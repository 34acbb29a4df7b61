package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFileKey(t *testing.T) {
	key := NewFileKey("produtos/", "Foto.JPG")

	assert.True(t, strings.HasPrefix(key, "produtos/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, NewFileKey("produtos", "Foto.JPG"))
}
