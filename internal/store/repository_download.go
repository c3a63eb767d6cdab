package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// downloadRepository is the PostgreSQL-backed implementation of
// [DownloadRepository]. It manages download entry records in the
// "downloads" table; the binary content itself lives in object storage
// and is referenced by the entry's object id.
type downloadRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDownloadRepository constructs a [DownloadRepository] backed by the
// provided database connection and logger.
func NewDownloadRepository(db *DB, logger *logger.Logger) DownloadRepository {
	logger.Debug().Msg("creating download repository")
	return &downloadRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDownload persists a new download entry and returns it with
// server-assigned fields populated.
func (r *downloadRepository) CreateDownload(ctx context.Context, download models.Download) (models.Download, error) {
	log := logger.FromContext(ctx)

	var created models.Download
	row := r.db.QueryRowContext(ctx, createDownload,
		download.FileID, download.Title, download.Filename, download.MimeType,
		download.Size, download.FileURL, download.ObjectID, download.ImagePath,
		download.UploadedBy)

	if err := scanDownload(row, &created); err != nil {
		log.Err(err).Str("func", "*downloadRepository.CreateDownload").Msg("error: creating download entry")
		return models.Download{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindDownloadByID retrieves a download entry by its identifier.
func (r *downloadRepository) FindDownloadByID(ctx context.Context, fileID string) (models.Download, error) {
	log := logger.FromContext(ctx)

	var found models.Download
	row := r.db.QueryRowContext(ctx, findDownloadByID, fileID)

	if err := scanDownload(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Download{}, ErrDownloadNotFound
		}
		log.Err(err).Str("func", "*downloadRepository.FindDownloadByID").Str("file_id", fileID).Msg("error: finding download entry by id")
		return models.Download{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteDownload removes a download entry permanently. Deleting an entry
// that does not exist returns [ErrDownloadNotFound].
func (r *downloadRepository) DeleteDownload(ctx context.Context, fileID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDownload, fileID)
	if err != nil {
		log.Err(err).Str("func", "*downloadRepository.DeleteDownload").Str("file_id", fileID).Msg("error: deleting download entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrDownloadNotFound
	}

	return nil
}

// ListDownloads returns all download entries, newest first.
func (r *downloadRepository) ListDownloads(ctx context.Context) ([]models.Download, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDownloads)
	if err != nil {
		log.Err(err).Str("func", "*downloadRepository.ListDownloads").Msg("failed to execute query for listing download entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	downloads := make([]models.Download, 0, 20)

	for rows.Next() {
		var download models.Download

		if scanErr := scanDownload(rows, &download); scanErr != nil {
			log.Err(scanErr).Str("func", "*downloadRepository.ListDownloads").Msg("failed to scan download entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		downloads = append(downloads, download)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*downloadRepository.ListDownloads").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return downloads, nil
}

// scanDownload reads one download entry row in [downloadColumns] order.
func scanDownload(row interface{ Scan(dest ...any) error }, download *models.Download) error {
	return row.Scan(
		&download.FileID,
		&download.Title,
		&download.Filename,
		&download.MimeType,
		&download.Size,
		&download.FileURL,
		&download.ObjectID,
		&download.ImagePath,
		&download.UploadedBy,
		&download.CreatedAt,
		&download.UpdatedAt,
	)
}
