package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/jurnalresonansi/resonansi-api/internal/config"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleUserInfo mirrors the userinfo endpoint response body.
type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type googleProvider struct {
	oauth  *oauth2.Config
	client *resty.Client
	logger *logger.Logger
}

// NewGoogleProvider constructs the OAuth2-backed [GoogleProvider] from
// the configured client credentials and callback URL.
func NewGoogleProvider(cfg config.OAuth, log *logger.Logger) GoogleProvider {
	return &googleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
		client: resty.New(),
		logger: log,
	}
}

// AuthCodeURL implements [GoogleProvider]. The "select_account" prompt
// forces the chooser even when a single Google session is active.
func (g *googleProvider) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// FetchProfile implements [GoogleProvider]. It exchanges the
// authorization code for an access token and queries the userinfo
// endpoint for the subject's id, e-mail, name and picture.
func (g *googleProvider) FetchProfile(ctx context.Context, code string) (models.GoogleProfile, error) {
	log := logger.FromContext(ctx)

	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*googleProvider.FetchProfile").Msg("error exchanging authorization code")
		return models.GoogleProfile{}, fmt.Errorf("exchange authorization code: %w", err)
	}

	var info googleUserInfo
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&info).
		Get(googleUserInfoURL)
	if err != nil {
		log.Err(err).Str("func", "*googleProvider.FetchProfile").Msg("error fetching user info")
		return models.GoogleProfile{}, fmt.Errorf("fetch user info: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Error().
			Str("func", "*googleProvider.FetchProfile").
			Int("status", resp.StatusCode()).
			Msg("user info endpoint returned non-OK status")
		return models.GoogleProfile{}, fmt.Errorf("fetch user info: unexpected status %d", resp.StatusCode())
	}

	return models.GoogleProfile{
		GoogleID: info.ID,
		Email:    info.Email,
		Name:     info.Name,
		Picture:  info.Picture,
	}, nil
}
