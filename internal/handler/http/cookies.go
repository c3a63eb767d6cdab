package http

import "net/http"

// setAuthCookie attaches the session token to the response as an
// http-only cookie. In production the cookie is marked Secure with
// SameSite=None so the browser sends it on cross-site requests from the
// public client origin; in development it stays on SameSite=Strict over
// plain HTTP.
func (h *Handler) setAuthCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.Auth.TokenDuration.Seconds()),
		HttpOnly: true,
	}

	if h.cfg.App.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)
}

// clearAuthCookie expires the session cookie immediately.
func (h *Handler) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
