package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Maximum dimensions for stored catalog images. Anything larger is scaled
// down before upload.
const (
	maxImageWidth  = 1600
	maxImageHeight = 1200
	maxImageBytes  = 10 << 20 // 10 MB
)

// ImageService validates, normalizes and stores uploaded images
type ImageService struct {
	storage StorageServiceInterface
}

// NewImageService creates a new image service
func NewImageService(storage StorageServiceInterface) *ImageService {
	return &ImageService{
		storage: storage,
	}
}

// UploadImage decodes, bounds and stores one image under
// {folder}/{uuid}.{ext}, returning the stored key and public URL
func (s *ImageService) UploadImage(ctx context.Context, reader io.Reader, filename, folder string) (*ImageUploadResult, error) {
	data, err := io.ReadAll(io.LimitReader(reader, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds maximum size of %d bytes", maxImageBytes)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if !isValidImageFormat(format) {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageWidth || bounds.Dy() > maxImageHeight {
		img = imaging.Fit(img, maxImageWidth, maxImageHeight, imaging.Lanczos)
		bounds = img.Bounds()
	}

	encoded, contentType, ext, err := encodeImage(img, format)
	if err != nil {
		return nil, err
	}

	key := generateImageKey(filename, folder, ext)

	url, err := s.storage.Upload(ctx, key, bytes.NewReader(encoded), contentType, int64(len(encoded)))
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	return &ImageUploadResult{
		Key:    key,
		URL:    url,
		Size:   int64(len(encoded)),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// DeleteImage removes a stored image
func (s *ImageService) DeleteImage(ctx context.Context, key string) error {
	if err := s.storage.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", key, err)
	}
	return nil
}

func encodeImage(img image.Image, format string) ([]byte, string, string, error) {
	var buf bytes.Buffer

	switch format {
	case "png":
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, "", "", fmt.Errorf("failed to encode png: %w", err)
		}
		return buf.Bytes(), "image/png", "png", nil
	default:
		// JPEG for everything else, quality per catalog listing needs
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
			return nil, "", "", fmt.Errorf("failed to encode jpeg: %w", err)
		}
		return buf.Bytes(), "image/jpeg", "jpg", nil
	}
}

// Only formats with a registered decoder belong here; imaging pulls in
// jpeg, png and gif.
func isValidImageFormat(format string) bool {
	switch format {
	case "jpeg", "png", "gif":
		return true
	}
	return false
}

// generateImageKey builds the {folder}/{randomName}.{ext} storage key.
// The original filename only contributes its slug for debuggability.
func generateImageKey(filename, folder, ext string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	slug := strings.ToLower(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, base))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "image"
	}
	if len(slug) > 40 {
		slug = slug[:40]
	}

	return fmt.Sprintf("%s/%s-%s.%s", folder, slug, uuid.New().String(), ext)
}
