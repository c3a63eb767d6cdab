// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, logging and tracing
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
package http

import (
	"net/http"
	"strings"

	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/utils"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// authCookieName is the session cookie set after a successful sign-in.
const authCookieName = "access_token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is resolved from the "Authorization" header first and the
// session cookie second, so bearer-based clients always win over a
// stale cookie. On success the verified identity (account id plus the
// role claim, exactly as embedded in the token) is stored in the
// request context before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when no token can be
// resolved or when the token fails validation.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := resolveToken(r)
		if err != nil {
			log.Err(err).Send()
			writeErrorStatus(w, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, err)
			return
		}

		ctx = utils.WithIdentity(ctx, models.Identity{
			UserID: token.UserID,
			Role:   token.Role,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveToken extracts the session token from the request: the
// "Authorization" header takes precedence, the session cookie is the
// fallback.
func resolveToken(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return getTokenFromAuthHeader(authHeader)
	}

	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return "", ErrNoTokenProvided
	}
	if cookie.Value == "" {
		return "", ErrEmptyToken
	}

	return cookie.Value, nil
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard
// "Bearer <token>" form. Other schemes are rejected.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
