package catalog

import (
	"encoding/base64"
	"strings"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
)

// MaxImageSize is the largest accepted product image, in bytes
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// ProductImage is the picture attached to a product.
// Either Data holds the bytes inline, or StorageKey points at an object in external storage.
type ProductImage struct {
	ContentType string
	Data        []byte
	StorageKey  string
	URL         string
}

// NewInlineImage creates an image whose bytes are stored with the product row
func NewInlineImage(contentType string, data []byte) (*ProductImage, error) {
	img := &ProductImage{ContentType: normalizeContentType(contentType), Data: data}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return img, nil
}

// NewStoredImage creates an image that lives in object storage
func NewStoredImage(contentType, key, url string) (*ProductImage, error) {
	img := &ProductImage{ContentType: normalizeContentType(contentType), StorageKey: key, URL: url}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return img, nil
}

// Validate checks content type and size
func (i *ProductImage) Validate() error {
	if _, ok := allowedImageTypes[i.ContentType]; !ok {
		return shared.NewDomainError("INVALID_IMAGE_TYPE", "Unsupported image type: "+i.ContentType)
	}
	if i.IsStored() {
		return nil
	}
	if len(i.Data) == 0 {
		return shared.NewDomainError("INVALID_IMAGE", "Image data cannot be empty")
	}
	if len(i.Data) > MaxImageSize {
		return shared.NewDomainError("IMAGE_TOO_LARGE", "Image cannot exceed 5MB")
	}
	return nil
}

// IsStored reports whether the image lives in object storage
func (i *ProductImage) IsStored() bool {
	return i.StorageKey != ""
}

// DisplayURL returns the URL a browser can load the image from.
// Inline images are rendered as a data URL.
func (i *ProductImage) DisplayURL() string {
	if i.IsStored() {
		return i.URL
	}
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

func normalizeContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}
	if ct == "image/jpg" {
		return "image/jpeg"
	}
	return ct
}
