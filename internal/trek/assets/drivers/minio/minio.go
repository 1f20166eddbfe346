package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// publicReadPolicy lets browsers fetch images straight from the bucket.
const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/*"]
  }]
}`

type Host struct {
	client *minio.Client
	cfg    assets.Config
}

var _ assets.Host = (*Host)(nil)

// New connects to MinIO and makes sure the bucket exists and is publicly
// readable.
func New(ctx context.Context, cfg assets.Config) (*Host, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		if err := client.SetBucketPolicy(ctx, cfg.Bucket, fmt.Sprintf(publicReadPolicy, cfg.Bucket)); err != nil {
			return nil, fmt.Errorf("set bucket %s policy: %w", cfg.Bucket, err)
		}
	}

	return &Host{client: client, cfg: cfg}, nil
}

func (h *Host) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := h.client.PutObject(ctx, h.cfg.Bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return h.cfg.ObjectURL(key), nil
}

func (h *Host) Delete(ctx context.Context, key string) error {
	err := h.client.RemoveObject(ctx, h.cfg.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (h *Host) Ping(ctx context.Context) error {
	ok, err := h.client.BucketExists(ctx, h.cfg.Bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %s: %w", h.cfg.Bucket, assets.ErrNotFound)
	}
	return nil
}

func (h *Host) PublicID(url string) (string, bool) {
	return assets.PublicIDFromURL(h.cfg.Bucket, url)
}

// Stat reports whether key is stored, used by tests and tooling.
func (h *Host) Stat(ctx context.Context, key string) (bool, error) {
	_, err := h.client.StatObject(ctx, h.cfg.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
