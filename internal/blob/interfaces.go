// Package blob stores uploaded file content in S3-compatible object
// storage. Database records reference stored objects by their object id
// (the storage key); URL resolution for clients goes through presigned
// GET links.
package blob

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/blob.go -package=mock

// UploadMetadata describes the object being uploaded.
type UploadMetadata struct {
	Filename    string
	ContentType string
	Size        int64
}

// UploadResult identifies a stored object and its direct URL.
type UploadResult struct {
	ObjectID string
	URL      string
}

// Store is the object-storage abstraction used by the download service.
type Store interface {
	// Upload streams the content into the bucket under a fresh
	// date-partitioned key and returns the stored object's identity.
	Upload(ctx context.Context, content io.Reader, meta UploadMetadata) (UploadResult, error)

	// Delete removes the object permanently.
	Delete(ctx context.Context, objectID string) error

	// PresignGet returns a short-lived URL granting read access to the
	// object.
	PresignGet(ctx context.Context, objectID string) (string, error)
}
