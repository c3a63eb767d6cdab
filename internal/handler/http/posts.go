package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/utils"
	"github.com/jurnalresonansi/resonansi-api/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var request models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorStatus(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	createdPost, err := h.services.PostService.CreatePost(ctx, identity, request)
	if err != nil {
		log.Err(err).Msg("error occurred during post creation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, createdPost, http.StatusCreated)
}

// getPosts serves the filtered article listing. All filters are
// optional query parameters; the search term matches title and content.
func (h *Handler) getPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.PostFilter{
		UserID:     r.URL.Query().Get("userId"),
		Category:   r.URL.Query().Get("category"),
		Slug:       r.URL.Query().Get("slug"),
		PostID:     r.URL.Query().Get("postId"),
		SearchTerm: r.URL.Query().Get("searchTerm"),
	}

	response, err := h.services.PostService.ListPosts(ctx, filter, listQueryFromRequest(r))
	if err != nil {
		log.Err(err).Msg("error occurred during post listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// getPostBySlug serves a single article with previous/next navigation
// references.
func (h *Handler) getPostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	response, err := h.services.PostService.GetPostBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		log.Err(err).Msg("error occurred during post lookup")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var patch models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorStatus(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updatedPost, err := h.services.PostService.UpdatePost(ctx, identity, chi.URLParam(r, "postId"), patch)
	if err != nil {
		log.Err(err).Msg("error occurred during post update")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedPost, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	if err := h.services.PostService.DeletePost(ctx, identity, chi.URLParam(r, "postId")); err != nil {
		log.Err(err).Msg("error occurred during post deletion")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "the post has been deleted"}, http.StatusOK)
}
