package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jurnalresonansi/resonansi-api/internal/blob"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// downloadService is the concrete implementation of DownloadService.
// File content lives in object storage; the database keeps the entry
// metadata and the object id linking the two.
type downloadService struct {
	downloadRepository store.DownloadRepository
	blobStore          blob.Store
	logger             *logger.Logger
}

// NewDownloadService constructs a DownloadService wired to the given
// repository and object store.
func NewDownloadService(downloadRepository store.DownloadRepository, blobStore blob.Store, logger *logger.Logger) DownloadService {
	return &downloadService{
		downloadRepository: downloadRepository,
		blobStore:          blobStore,
		logger:             logger,
	}
}

// Publish stores the uploaded content in object storage and records the
// download entry. Admin only; title, image path and a filename are all
// required.
//
// The object is uploaded first. If recording the entry fails afterwards
// the upload is rolled back so no orphan object stays behind.
func (d *downloadService) Publish(ctx context.Context, actor models.Identity, title, imagePath string, content io.Reader, meta blob.UploadMetadata) (models.Download, error) {
	log := logger.FromContext(ctx)

	if !isAdmin(actor) {
		log.Error().Str("actor_id", actor.UserID).Msg("actor is not allowed to publish downloads")
		return models.Download{}, ErrForbidden
	}
	if title == "" || imagePath == "" || meta.Filename == "" {
		return models.Download{}, ErrInvalidDataProvided
	}

	uploaded, err := d.blobStore.Upload(ctx, content, meta)
	if err != nil {
		log.Err(err).Str("filename", meta.Filename).Msg("object upload ended with error")
		return models.Download{}, fmt.Errorf("object upload ended with error: %w", err)
	}

	download := models.Download{
		FileID:     uuid.NewString(),
		Title:      title,
		Filename:   meta.Filename,
		MimeType:   meta.ContentType,
		Size:       meta.Size,
		FileURL:    uploaded.URL,
		ObjectID:   uploaded.ObjectID,
		ImagePath:  imagePath,
		UploadedBy: actor.UserID,
	}

	createdDownload, err := d.downloadRepository.CreateDownload(ctx, download)
	if err != nil {
		log.Err(err).Str("filename", meta.Filename).Msg("download entry creation ended with error")

		if deleteErr := d.blobStore.Delete(ctx, uploaded.ObjectID); deleteErr != nil {
			log.Err(deleteErr).Str("object_id", uploaded.ObjectID).Msg("object rollback after failed entry creation also failed")
		}

		return models.Download{}, fmt.Errorf("download entry creation ended with error: %w", err)
	}

	return createdDownload, nil
}

// Delete removes the stored object first and the entry second. Admin
// only.
//
// When the entry deletion fails after the object is already gone the
// returned error wraps ErrDanglingDownload: the entry still exists but
// points at a missing object, and the operation should be retried.
func (d *downloadService) Delete(ctx context.Context, actor models.Identity, fileID string) error {
	log := logger.FromContext(ctx)

	if !isAdmin(actor) {
		log.Error().Str("actor_id", actor.UserID).Msg("actor is not allowed to delete downloads")
		return ErrForbidden
	}
	if fileID == "" {
		return ErrInvalidDataProvided
	}

	download, err := d.downloadRepository.FindDownloadByID(ctx, fileID)
	if err != nil {
		log.Err(err).Str("file_id", fileID).Msg("download entry search by id failed")
		return fmt.Errorf("download entry search by id failed: %w", err)
	}

	if err := d.blobStore.Delete(ctx, download.ObjectID); err != nil {
		log.Err(err).Str("object_id", download.ObjectID).Msg("object deletion ended with error")
		return fmt.Errorf("object deletion ended with error: %w", err)
	}

	if err := d.downloadRepository.DeleteDownload(ctx, fileID); err != nil {
		log.Err(err).Str("file_id", fileID).Msg("download entry deletion ended with error after object removal")
		return fmt.Errorf("%w: %w", ErrDanglingDownload, err)
	}

	return nil
}

// ResolveURL returns a short-lived presigned link to the stored file
// content.
func (d *downloadService) ResolveURL(ctx context.Context, fileID string) (string, error) {
	log := logger.FromContext(ctx)

	if fileID == "" {
		return "", ErrInvalidDataProvided
	}

	download, err := d.downloadRepository.FindDownloadByID(ctx, fileID)
	if err != nil {
		log.Err(err).Str("file_id", fileID).Msg("download entry search by id failed")
		return "", fmt.Errorf("download entry search by id failed: %w", err)
	}

	url, err := d.blobStore.PresignGet(ctx, download.ObjectID)
	if err != nil {
		log.Err(err).Str("object_id", download.ObjectID).Msg("presigning download url ended with error")
		return "", fmt.Errorf("presigning download url ended with error: %w", err)
	}

	return url, nil
}

// ListDownloads returns all download entries, newest first.
func (d *downloadService) ListDownloads(ctx context.Context) ([]models.Download, error) {
	log := logger.FromContext(ctx)

	downloads, err := d.downloadRepository.ListDownloads(ctx)
	if err != nil {
		log.Err(err).Msg("download listing ended with error")
		return nil, fmt.Errorf("download listing ended with error: %w", err)
	}

	return downloads, nil
}
