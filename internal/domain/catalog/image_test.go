package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInlineImage(t *testing.T) {
	t.Run("normalizes content type", func(t *testing.T) {
		img, err := NewInlineImage("Image/JPG; charset=binary", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", img.ContentType)
		assert.False(t, img.IsStored())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		_, err := NewInlineImage("application/pdf", []byte("x"))
		assert.Error(t, err)
	})

	t.Run("rejects empty data", func(t *testing.T) {
		_, err := NewInlineImage("image/png", nil)
		assert.Error(t, err)
	})

	t.Run("rejects oversized data", func(t *testing.T) {
		_, err := NewInlineImage("image/png", make([]byte, MaxImageSize+1))
		assert.Error(t, err)
	})
}

func TestProductImage_DisplayURL(t *testing.T) {
	inline, err := NewInlineImage("image/png", []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,YWJj", inline.DisplayURL())

	stored, err := NewStoredImage("image/webp", "products/1.webp", "https://cdn.example.com/products/1.webp")
	require.NoError(t, err)
	assert.True(t, stored.IsStored())
	assert.Equal(t, "https://cdn.example.com/products/1.webp", stored.DisplayURL())
}
