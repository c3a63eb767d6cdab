package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/utils"
	"github.com/jurnalresonansi/resonansi-api/models"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var request models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorStatus(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	createdComment, err := h.services.CommentService.CreateComment(ctx, identity, request)
	if err != nil {
		log.Err(err).Msg("error occurred during comment creation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, createdComment, http.StatusCreated)
}

func (h *Handler) getPostComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	comments, err := h.services.CommentService.ListPostComments(ctx, chi.URLParam(r, "postId"))
	if err != nil {
		log.Err(err).Msg("error occurred during post comment listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) likeComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	updatedComment, err := h.services.CommentService.ToggleLike(ctx, identity, chi.URLParam(r, "commentId"))
	if err != nil {
		log.Err(err).Msg("error occurred during comment like toggle")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedComment, http.StatusOK)
}

func (h *Handler) editComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var request models.EditCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorStatus(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updatedComment, err := h.services.CommentService.EditComment(ctx, identity, chi.URLParam(r, "commentId"), request.Content)
	if err != nil {
		log.Err(err).Msg("error occurred during comment edit")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedComment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	if err := h.services.CommentService.DeleteComment(ctx, identity, chi.URLParam(r, "commentId")); err != nil {
		log.Err(err).Msg("error occurred during comment deletion")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "comment has been deleted"}, http.StatusOK)
}

func (h *Handler) getComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	response, err := h.services.CommentService.ListComments(ctx, identity, listQueryFromRequest(r))
	if err != nil {
		log.Err(err).Msg("error occurred during comment listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
