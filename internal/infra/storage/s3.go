package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
)

// Uploader grava um objeto e devolve a URL pública.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type S3Uploader struct {
	client     *s3.Client
	bucket     string
	region     string
	publicBase string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// endpoint alternativo (MinIO, R2) usa path-style
	if cfg.S3EndpointURL != "" {
		opts.BaseEndpoint = aws.String(cfg.S3EndpointURL)
		opts.UsePathStyle = true
	}

	return &S3Uploader{
		client:     s3.New(opts),
		bucket:     cfg.S3Bucket,
		region:     cfg.S3Region,
		publicBase: cfg.S3PublicBase,
	}
}

func (u *S3Uploader) Upload(
	ctx context.Context,
	key string,
	contentType string,
	data []byte,
) (string, error) {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	if u.publicBase != "" {
		return strings.TrimRight(u.publicBase, "/") + "/" + key, nil
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

var _ Uploader = (*S3Uploader)(nil)
