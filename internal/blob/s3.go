package blob

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/jurnalresonansi/resonansi-api/internal/config"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
)

// presignExpiry bounds how long a presigned GET link stays valid.
const presignExpiry = 15 * time.Minute

// s3Store is the S3-backed implementation of [Store]. It works against
// AWS S3 or any S3-compatible endpoint (MinIO) selected via the
// configured base endpoint.
type s3Store struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	endpoint      string
	logger        *logger.Logger
}

// NewS3Store builds the S3 client from static credentials and the
// configured endpoint, and returns a [Store] bound to the configured
// bucket.
func NewS3Store(ctx context.Context, cfg config.S3, log *logger.Logger) (Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		log.Err(err).Str("func", "NewS3Store").Msg("error loading object storage configuration")
		return nil, fmt.Errorf("error loading object storage configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("func", "NewS3Store").Str("bucket", cfg.Bucket).Msg("object storage client initialized")

	return &s3Store{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		endpoint:      strings.TrimSuffix(cfg.Endpoint, "/"),
		logger:        log,
	}, nil
}

// newObjectID produces a fresh date-partitioned storage key. The random
// prefix keeps same-named uploads from colliding.
func newObjectID(filename string) string {
	now := time.Now()
	return fmt.Sprintf("downloads/%d/%02d/%v-%s", now.Year(), now.Month(), uuid.New(), filename)
}

// Upload streams the content into the bucket and returns the object id
// together with its direct URL.
func (s *s3Store) Upload(ctx context.Context, content io.Reader, meta UploadMetadata) (UploadResult, error) {
	log := logger.FromContext(ctx)

	objectID := newObjectID(meta.Filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectID),
		Body:          content,
		ContentType:   aws.String(meta.ContentType),
		ContentLength: aws.Int64(meta.Size),
	})
	if err != nil {
		log.Err(err).
			Str("func", "*s3Store.Upload").
			Str("object_id", objectID).
			Msg("error uploading object")
		return UploadResult{}, fmt.Errorf("error uploading object: %w", err)
	}

	return UploadResult{
		ObjectID: objectID,
		URL:      fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectID),
	}, nil
}

// Delete removes the object permanently.
func (s *s3Store) Delete(ctx context.Context, objectID string) error {
	log := logger.FromContext(ctx)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectID),
	})
	if err != nil {
		log.Err(err).
			Str("func", "*s3Store.Delete").
			Str("object_id", objectID).
			Msg("error deleting object")
		return fmt.Errorf("error deleting object: %w", err)
	}

	return nil
}

// PresignGet returns a short-lived URL granting read access to the
// object.
func (s *s3Store) PresignGet(ctx context.Context, objectID string) (string, error) {
	log := logger.FromContext(ctx)

	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectID),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		log.Err(err).
			Str("func", "*s3Store.PresignGet").
			Str("object_id", objectID).
			Msg("error presigning object url")
		return "", fmt.Errorf("error presigning object url: %w", err)
	}

	return req.URL, nil
}
