package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/handykonnect/handykonnect-api/internal/config"
)

// Uploader stores processed service images on S3 and hands back the public
// URL persisted on the service row.
type Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
	region    string
}

func NewUploader(cfg *config.Config) *Uploader {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	return &Uploader{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.S3Bucket,
		publicURL: cfg.S3PublicURL,
		region:    cfg.S3Region,
	}
}

func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	if u.publicURL != "" {
		return fmt.Sprintf("%s/%s", u.publicURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
