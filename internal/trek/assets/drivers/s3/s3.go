package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type Host struct {
	client *s3.Client
	cfg    assets.Config
}

var _ assets.Host = (*Host)(nil)

// New builds an S3 client. With an endpoint set it talks path-style to any
// S3 compatible server, otherwise it uses AWS with the default resolver.
// Static keys are optional, the default credential chain applies without
// them.
func New(ctx context.Context, cfg assets.Config) (*Host, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			scheme := "http://"
			if cfg.UseSSL {
				scheme = "https://"
			}
			o.BaseEndpoint = aws.String(scheme + cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Host{client: client, cfg: cfg}, nil
}

func (h *Host) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(h.cfg.Bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return h.cfg.ObjectURL(key), nil
}

// Delete removes key. S3 reports success for missing keys already.
func (h *Host) Delete(ctx context.Context, key string) error {
	_, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (h *Host) Ping(ctx context.Context) error {
	_, err := h.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(h.cfg.Bucket)})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return fmt.Errorf("bucket %s: %w", h.cfg.Bucket, assets.ErrNotFound)
		}
		return err
	}
	return nil
}

func (h *Host) PublicID(url string) (string, bool) {
	return assets.PublicIDFromURL(h.cfg.Bucket, url)
}
