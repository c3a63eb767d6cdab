package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/utils"
	"github.com/jurnalresonansi/resonansi-api/models"
)

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var patch models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorStatus(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, identity, chi.URLParam(r, "userId"), patch)
	if err != nil {
		log.Err(err).Msg("error occurred during user update")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, identity, chi.URLParam(r, "userId")); err != nil {
		log.Err(err).Msg("error occurred during user deletion")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "user has been deleted"}, http.StatusOK)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var request models.RoleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorStatus(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updatedUser, err := h.services.UserService.UpdateRole(ctx, identity, chi.URLParam(r, "userId"), request.Role)
	if err != nil {
		log.Err(err).Msg("error occurred during role update")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.UserService.GetUser(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		log.Err(err).Msg("error occurred during user lookup")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	response, err := h.services.UserService.ListUsers(ctx, identity, listQueryFromRequest(r))
	if err != nil {
		log.Err(err).Msg("error occurred during user listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// listQueryFromRequest reads the shared pagination query parameters.
// Invalid values fall back to the listing defaults.
func listQueryFromRequest(r *http.Request) models.ListQuery {
	query := models.ListQuery{}

	if startIndex, err := strconv.Atoi(r.URL.Query().Get("startIndex")); err == nil {
		query.StartIndex = startIndex
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		query.Limit = limit
	}
	query.Ascending = r.URL.Query().Get("order") == "asc"

	return query.Normalize()
}
