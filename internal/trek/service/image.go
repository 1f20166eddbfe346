package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"
	"github.com/google/uuid"
)

type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type ImageService struct {
	Assets assets.Host
}

// Upload validates and stores an admin image upload under a random key.
func (s *ImageService) Upload(ctx context.Context, data []byte, declaredType string) (UploadedImage, error) {
	img, err := assets.PrepareImage(data, declaredType)
	if err != nil {
		return UploadedImage{}, err
	}

	key := assets.Folder + "/" + uuid.NewString() + img.Ext
	url, err := s.Assets.Put(ctx, key, bytes.NewReader(img.Data), int64(len(img.Data)), img.ContentType)
	if err != nil {
		return UploadedImage{}, fmt.Errorf("store image: %w", err)
	}

	slogx.FromContext(ctx).Info("image uploaded", "public_id", key, "bytes", len(img.Data))
	return UploadedImage{URL: url, PublicID: key, Width: img.Width, Height: img.Height}, nil
}

func (s *ImageService) Delete(ctx context.Context, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return ErrPublicIDRequired
	}
	if err := s.Assets.Delete(ctx, publicID); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}
