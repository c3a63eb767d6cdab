package http

import (
	"errors"
	"net/http"

	"github.com/jurnalresonansi/resonansi-api/internal/service"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
	"github.com/jurnalresonansi/resonansi-api/internal/utils"
	"github.com/jurnalresonansi/resonansi-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrValidationUsername:       http.StatusBadRequest,
	service.ErrValidationUsernameLength: http.StatusBadRequest,
	service.ErrValidationEmail:          http.StatusBadRequest,
	service.ErrValidationPassword:       http.StatusBadRequest,
	service.ErrValidationCategory:       http.StatusBadRequest,
	service.ErrValidationRole:           http.StatusBadRequest,
	service.ErrNothingToUpdate:          http.StatusBadRequest,
	service.ErrCommentAuthorMismatch:    http.StatusBadRequest,
	service.ErrWrongPassword:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrAccountDeactivated:       http.StatusForbidden,
	service.ErrForbidden:                http.StatusForbidden,
	service.ErrEmailAlreadyInUse:        http.StatusConflict,
	service.ErrTokenCreationFailed:      http.StatusInternalServerError,
	service.ErrDanglingDownload:         http.StatusInternalServerError,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrPostAlreadyExists: http.StatusConflict,
	store.ErrPostNotFound:      http.StatusNotFound,
	store.ErrCommentNotFound:   http.StatusNotFound,
	store.ErrDownloadNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusAndMessageFromError resolves the HTTP status and client-facing
// message for a (possibly wrapped) service or store error. Unrecognized
// errors collapse to a generic 500 so internal details never leak into
// responses.
func statusAndMessageFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError renders the uniform JSON error body.
func writeError(w http.ResponseWriter, err error) {
	status, message := statusAndMessageFromError(err)

	utils.WriteJSON(w, models.ErrorResponse{
		Success:    false,
		StatusCode: status,
		Message:    message,
	}, status)
}

// writeErrorStatus renders the uniform JSON error body with an explicit
// status and message, for failures detected before the service layer.
func writeErrorStatus(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Success:    false,
		StatusCode: status,
		Message:    message,
	}, status)
}
