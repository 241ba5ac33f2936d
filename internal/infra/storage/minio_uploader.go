package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/nowshad-islam-dev/skipq-api/internal/config"
	"github.com/nowshad-islam-dev/skipq-api/internal/domain/media"
)

type minioPutAPI interface {
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type MinioUploader struct {
	client  minioPutAPI
	bucket  string
	baseURL string
}

// normaliseEndpoint accepts "minio:9000" or "http(s)://minio:9000".
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	return raw, false, nil
}

// NewMinioUploader connects and checks that the bucket exists.
func NewMinioUploader(ctx context.Context, cfg config.MediaConfig) (*MinioUploader, error) {
	endpoint, secure, err := normaliseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("minio bucket does not exist: %s", cfg.Bucket)
	}

	return &MinioUploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: minioBaseURL(cfg.PublicBaseURL, endpoint, secure, cfg.Bucket),
	}, nil
}

func minioBaseURL(public, endpoint string, secure bool, bucket string) string {
	if public != "" {
		return public
	}
	scheme := "http"
	if secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket)
}

func (u *MinioUploader) Upload(ctx context.Context, data []byte, folder media.Folder) (string, error) {
	key, contentType, err := objectFor(data, folder)
	if err != nil {
		return "", err
	}

	if _, err := u.client.PutObject(
		ctx,
		u.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	); err != nil {
		return "", fmt.Errorf("minio put %s: %w", key, err)
	}

	return joinURL(u.baseURL, key), nil
}

var _ media.Uploader = (*MinioUploader)(nil)
