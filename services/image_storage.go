package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	appconfig "main/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStorage uploads note images to an S3-compatible bucket and hands back
// publicly reachable URLs to store on the note.
type ImageStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewImageStorage(ctx context.Context, cfg appconfig.StorageConfig) (*ImageStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	if cfg.Endpoint != "" {
		baseURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &ImageStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

func storageKey(fileName string) string {
	d := time.Now()
	return fmt.Sprintf("notes/%d/%d/%d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), path.Ext(fileName))
}

// UploadImage stores the image bytes and returns the public URL.
func (s *ImageStorage) UploadImage(ctx context.Context, data []byte, contentType, fileName string) (string, error) {
	key := storageKey(fileName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.baseURL + "/" + key, nil
}
