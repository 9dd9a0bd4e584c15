package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ThumbnailCache stores optimized report images on disk keyed by source content
type ThumbnailCache struct {
	dir string
}

// NewThumbnailCache creates a cache rooted at dir
func NewThumbnailCache(dir string) *ThumbnailCache {
	return &ThumbnailCache{dir: dir}
}

// Path returns the cache file path for source image data and size
func (c *ThumbnailCache) Path(source []byte, size string) string {
	sum := sha256.Sum256(source)
	return filepath.Join(c.dir, fmt.Sprintf("report_%s_%s.jpg", hex.EncodeToString(sum[:8]), size))
}

// Get returns the cached image for source, if any
func (c *ThumbnailCache) Get(source []byte, size string) ([]byte, bool) {
	data, err := os.ReadFile(c.Path(source, size))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put saves an optimized image to the cache
func (c *ThumbnailCache) Put(source []byte, size string, imageData []byte) error {
	cachePath := c.Path(source, size)
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	log.Printf("✓ Image cached: %s", cachePath)
	return nil
}

// OptimizeImage optimizes an image by converting to JPEG and resizing
// imageData: raw image bytes (PNG, JPEG, etc.)
// size: "thumb" or "medium"
// Returns optimized JPEG image bytes
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim int
	var quality int

	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "medium":
		maxDim = maxSizeMedium
		quality = qualityMedium
	default:
		maxDim = maxSizeMedium
		quality = qualityMedium
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	// imaging.Fit keeps the aspect ratio and never enlarges
	bounds := img.Bounds()
	var resizedImg image.Image = img
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		resizedImg = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		log.Printf("🔄 Resized image: %dx%d -> %dx%d", bounds.Dx(), bounds.Dy(), resizedImg.Bounds().Dx(), resizedImg.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resizedImg, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Printf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, buf.Len())
	return buf.Bytes(), nil
}
