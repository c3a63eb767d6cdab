package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/utils"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// stateCookieName stores the anti-forgery state value between the
// consent redirect and the provider callback.
const stateCookieName = "oauth_state"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorStatus(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, request)
	if err != nil {
		log.Err(err).Msg("error occurred during user signup")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	h.setAuthCookie(w, token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{
		Message:     "signup successful",
		User:        registeredUser,
		AccessToken: token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorStatus(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.SignIn(ctx, request)
	if err != nil {
		log.Err(err).Msg("error occurred during user signin")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	h.setAuthCookie(w, token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{
		Message:     "signin successful",
		User:        foundUser,
		AccessToken: token.SignedString,
	}, http.StatusOK)
}

// googleRedirect starts the federated login flow: a fresh anti-forgery
// state value is pinned in a short-lived cookie and the browser is sent
// to the provider consent page.
func (h *Handler) googleRedirect(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.App.IsProduction(),
	})

	http.Redirect(w, r, h.services.AuthService.GoogleAuthURL(state), http.StatusTemporaryRedirect)
}

// googleCallback completes the browser variant of the federated login
// flow: the state value is checked against the pinned cookie, the
// authorization code is resolved to an account, and the browser is sent
// back to the client with the session cookie set and the token appended
// to the redirect URL for clients that cannot read the cookie.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		log.Error().Msg("oauth state mismatch")
		writeErrorStatus(w, http.StatusBadRequest, "oauth state mismatch")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	user, err := h.services.AuthService.GoogleSignIn(ctx, r.URL.Query().Get("code"))
	if err != nil {
		log.Err(err).Msg("error occurred during google signin")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	h.setAuthCookie(w, token.SignedString)
	http.Redirect(w, r, h.cfg.App.ClientURL+"?token="+url.QueryEscape(token.SignedString), http.StatusTemporaryRedirect)
}

// googleSignin is the API variant of federated login: the authorization
// code arrives as a JSON body instead of a callback query, and the
// response is the same JSON envelope local signin returns. Account
// resolution is shared with the browser variant.
func (h *Handler) googleSignin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.GoogleSigninRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorStatus(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	user, err := h.services.AuthService.GoogleSignIn(ctx, request.Code)
	if err != nil {
		log.Err(err).Msg("error occurred during google signin")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	h.setAuthCookie(w, token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{
		Message:     "signin successful",
		User:        user,
		AccessToken: token.SignedString,
	}, http.StatusOK)
}

// me returns the account behind the verified session token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	user, err := h.services.UserService.GetUser(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Str("user_id", identity.UserID).Msg("error occurred during current user lookup")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// signout clears the session cookie. The token itself stays valid until
// it expires; the server keeps no session state to revoke.
func (h *Handler) signout(w http.ResponseWriter, r *http.Request) {
	h.clearAuthCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: "signout successful"}, http.StatusOK)
}
