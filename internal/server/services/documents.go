package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	sc "github.com/mpetrenko/brandsync/internal/server/config"
)

const presignExpiry = 15 * time.Minute

// presignAPI is the slice of s3.PresignClient the service uses; a seam
// for tests.
type presignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error)
}

// PresignedRequest is the subset of the SDK's presigned request the
// handlers need.
type PresignedRequest struct {
	URL string
}

type sdkPresignClient struct {
	client *s3.PresignClient
}

func (c *sdkPresignClient) PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error) {
	req, err := c.client.PresignPutObject(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return &PresignedRequest{URL: req.URL}, nil
}

func (c *sdkPresignClient) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error) {
	req, err := c.client.PresignGetObject(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return &PresignedRequest{URL: req.URL}, nil
}

// newPresignClient builds the real SDK presign client; replaced in tests.
var newPresignClient = func(cfg *sc.Config) (presignAPI, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &sdkPresignClient{client: s3.NewPresignClient(client)}, nil
}

// DocumentService hands out presigned URLs for brand document uploads and
// downloads. The server never proxies document bytes.
type DocumentService struct {
	config *sc.Config
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(config *sc.Config) *DocumentService {
	return &DocumentService{config: config}
}

// storageKey namespaces document objects by user and date so buckets stay
// listable; the random element prevents overwrites between same-named
// uploads.
func storageKey(userID, fileName string) string {
	d := time.Now()
	key := fmt.Sprintf("docs/%s/%d/%d/%d/%v", userID, d.Year(), d.Month(), d.Day(), uuid.New())
	if fileName != "" {
		key += "/" + fileName
	}
	return key
}

// GetUploadURL returns a fresh storage key and a presigned PUT URL for it.
func (s *DocumentService) GetUploadURL(ctx context.Context, userID, fileName string) (string, string, error) {
	presignClient, err := newPresignClient(s.config)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := storageKey(userID, fileName)

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// GetDownloadURL returns a presigned GET URL for a previously uploaded
// document.
func (s *DocumentService) GetDownloadURL(ctx context.Context, key string) (string, error) {
	presignClient, err := newPresignClient(s.config)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
