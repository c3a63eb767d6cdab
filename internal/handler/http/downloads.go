package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jurnalresonansi/resonansi-api/internal/blob"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/utils"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// maxUploadSize bounds the multipart form memory for file uploads.
const maxUploadSize = 32 << 20

// uploadDownload accepts a multipart form with the file content plus
// the "title" and "imagePath" fields and publishes it to the download
// area.
func (h *Handler) uploadDownload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeErrorStatus(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing file field")
		writeErrorStatus(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	meta := blob.UploadMetadata{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}

	createdDownload, err := h.services.DownloadService.Publish(ctx,
		identity,
		r.FormValue("title"),
		r.FormValue("imagePath"),
		file,
		meta,
	)
	if err != nil {
		log.Err(err).Msg("error occurred during download publishing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, createdDownload, http.StatusCreated)
}

// getDownloads serves the published file listing.
func (h *Handler) getDownloads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	downloads, err := h.services.DownloadService.ListDownloads(ctx)
	if err != nil {
		log.Err(err).Msg("error occurred during download listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, downloads, http.StatusOK)
}

// downloadFile redirects the client to a short-lived link for the
// stored file content.
func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	url, err := h.services.DownloadService.ResolveURL(ctx, chi.URLParam(r, "fileId"))
	if err != nil {
		log.Err(err).Msg("error occurred during download url resolution")
		writeError(w, err)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

func (h *Handler) deleteDownload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	if err := h.services.DownloadService.Delete(ctx, identity, chi.URLParam(r, "fileId")); err != nil {
		log.Err(err).Msg("error occurred during download deletion")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "file has been deleted"}, http.StatusOK)
}
