package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jurnalresonansi/resonansi-api/internal/config"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/mock"
	"github.com/jurnalresonansi/resonansi-api/internal/service"
	"github.com/jurnalresonansi/resonansi-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	auth      *mock.MockAuthService
	users     *mock.MockUserService
	posts     *mock.MockPostService
	comments  *mock.MockCommentService
	downloads *mock.MockDownloadService
}

func newTestHandler(t *testing.T) (*chi.Mux, testMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := testMocks{
		auth:      mock.NewMockAuthService(ctrl),
		users:     mock.NewMockUserService(ctrl),
		posts:     mock.NewMockPostService(ctrl),
		comments:  mock.NewMockCommentService(ctrl),
		downloads: mock.NewMockDownloadService(ctrl),
	}

	services := &service.Services{
		AuthService:     mocks.auth,
		UserService:     mocks.users,
		PostService:     mocks.posts,
		CommentService:  mocks.comments,
		DownloadService: mocks.downloads,
	}

	cfg := config.StructuredConfig{
		App: config.App{
			Environment: "development",
			ClientURL:   "https://client.example.com",
		},
		Auth: config.Auth{
			TokenSignKey:  "test-key",
			TokenIssuer:   "resonansi-test",
			TokenDuration: time.Hour,
		},
	}

	handler := NewHandler(services, cfg, logger.Nop())
	return handler.Init(), mocks
}

func decodeErrorResponse(t *testing.T, body *bytes.Buffer) models.ErrorResponse {
	t.Helper()
	var response models.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&response))
	return response
}

func TestSignup_SetsSessionCookie(t *testing.T) {
	router, mocks := newTestHandler(t)

	user := models.User{UserID: "u1", Username: "johndoe1", Role: models.RoleUser}
	mocks.auth.EXPECT().
		SignUp(gomock.Any(), models.SignupRequest{Username: "johndoe1", Email: "john@example.com", Password: "s3cret1"}).
		Return(user, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), user).
		Return(models.Token{SignedString: "signed.jwt.token", UserID: "u1", Role: models.RoleUser}, nil)

	body := `{"username":"johndoe1","email":"john@example.com","password":"s3cret1"}`
	request := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response models.AuthResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "signup successful", response.Message)
	assert.Equal(t, "signed.jwt.token", response.AccessToken)

	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)
	sessionCookie := cookies[0]
	assert.Equal(t, "access_token", sessionCookie.Name)
	assert.Equal(t, "signed.jwt.token", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
	assert.False(t, sessionCookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, sessionCookie.SameSite)
}

func TestSignup_InvalidJSON(t *testing.T) {
	router, _ := newTestHandler(t)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSignin_WrongPasswordMapsTo401(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	body := `{"email":"john@example.com","password":"wrong"}`
	request := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	response := decodeErrorResponse(t, recorder.Body)
	assert.False(t, response.Success)
	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

func TestSignin_DeactivatedMapsTo403(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrAccountDeactivated)

	body := `{"email":"john@example.com","password":"s3cret1"}`
	request := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAuth_MissingToken(t *testing.T) {
	router, _ := newTestHandler(t)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	response := decodeErrorResponse(t, recorder.Body)
	assert.Equal(t, ErrNoTokenProvided.Error(), response.Message)
}

func TestAuth_HeaderPreferredOverCookie(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "header-token").
		Return(models.Token{UserID: "u1", Role: models.RoleUser}, nil)
	mocks.users.EXPECT().
		GetUser(gomock.Any(), "u1").
		Return(models.User{UserID: "u1", Username: "johndoe1"}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Bearer header-token")
	request.AddCookie(&http.Cookie{Name: "access_token", Value: "stale-cookie-token"})
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuth_CookieFallback(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "cookie-token").
		Return(models.Token{UserID: "u1", Role: models.RoleUser}, nil)
	mocks.users.EXPECT().
		GetUser(gomock.Any(), "u1").
		Return(models.User{UserID: "u1"}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuth_NonBearerSchemeRejected(t *testing.T) {
	router, _ := newTestHandler(t)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	response := decodeErrorResponse(t, recorder.Body)
	assert.Equal(t, ErrInvalidAuthorizationHeader.Error(), response.Message)
}

func TestAuth_InvalidToken(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "bad-token").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Bearer bad-token")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGoogleRedirect_PinsStateCookie(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		GoogleAuthURL(gomock.Any()).
		DoAndReturn(func(state string) string {
			assert.NotEmpty(t, state)
			return "https://accounts.google.com/o/oauth2/auth?state=" + state
		})

	request := httptest.NewRequest(http.MethodGet, "/api/auth/google", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusTemporaryRedirect, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Location"), "accounts.google.com")

	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "oauth_state", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestGoogleCallback_StateMismatch(t *testing.T) {
	router, _ := newTestHandler(t)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=forged&code=abc", nil)
	request.AddCookie(&http.Cookie{Name: "oauth_state", Value: "pinned"})
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	response := decodeErrorResponse(t, recorder.Body)
	assert.Equal(t, "oauth state mismatch", response.Message)
}

func TestGoogleCallback_RedirectsToClient(t *testing.T) {
	router, mocks := newTestHandler(t)

	user := models.User{UserID: "u1", Role: models.RoleUser}
	mocks.auth.EXPECT().GoogleSignIn(gomock.Any(), "auth-code").Return(user, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), user).
		Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=pinned&code=auth-code", nil)
	request.AddCookie(&http.Cookie{Name: "oauth_state", Value: "pinned"})
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusTemporaryRedirect, recorder.Code)
	assert.Equal(t, "https://client.example.com?token=signed.jwt.token", recorder.Header().Get("Location"))

	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)
	var sessionCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == "access_token" {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Equal(t, "signed.jwt.token", sessionCookie.Value)
}

func TestGoogleSignin_ReturnsAuthResponse(t *testing.T) {
	router, mocks := newTestHandler(t)

	user := models.User{UserID: "u1", Role: models.RoleUser}
	mocks.auth.EXPECT().GoogleSignIn(gomock.Any(), "auth-code").Return(user, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), user).
		Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/google", strings.NewReader(`{"code":"auth-code"}`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.AuthResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "signin successful", response.Message)
	assert.Equal(t, "signed.jwt.token", response.AccessToken)

	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "access_token", cookies[0].Name)
}

func TestGoogleSignin_DeactivatedMapsTo403(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		GoogleSignIn(gomock.Any(), "auth-code").
		Return(models.User{}, service.ErrAccountDeactivated)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/google", strings.NewReader(`{"code":"auth-code"}`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestSignout_ClearsCookie(t *testing.T) {
	router, _ := newTestHandler(t)

	request := httptest.NewRequest(http.MethodPost, "/api/user/signout", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
