package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jurnalresonansi/resonansi-api/internal/service"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
	"github.com/jurnalresonansi/resonansi-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authedRequest(method, target string, body string) *http.Request {
	var request *http.Request
	if body != "" {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		request = httptest.NewRequest(method, target, nil)
	}
	request.Header.Set("Authorization", "Bearer valid-token")
	return request
}

func expectParsedToken(mocks testMocks, role string) {
	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: "actor-id", Role: role}, nil)
}

func TestGetPosts_ParsesFilterAndQuery(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.posts.EXPECT().
		ListPosts(gomock.Any(),
			models.PostFilter{Category: "teknologi", SearchTerm: "golang"},
			models.ListQuery{StartIndex: 9, Limit: 3, Ascending: true}).
		Return(models.PostsResponse{TotalPosts: 1}, nil)

	target := "/api/post/getposts?category=teknologi&searchTerm=golang&startIndex=9&limit=3&order=asc"
	request := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetPosts_DefaultsApplied(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.posts.EXPECT().
		ListPosts(gomock.Any(), models.PostFilter{}, models.ListQuery{StartIndex: 0, Limit: 9}).
		Return(models.PostsResponse{}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/post/getposts", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetPostBySlug_ReturnsNeighbors(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.posts.EXPECT().
		GetPostBySlug(gomock.Any(), "hello-world").
		Return(models.PostWithNeighbors{
			Post:     models.Post{PostID: "p1", Slug: "hello-world"},
			Previous: &models.PostRef{Title: "Older", Slug: "older"},
		}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/post/post/hello-world", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.PostWithNeighbors
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "hello-world", response.Post.Slug)
	require.NotNil(t, response.Previous)
	assert.Equal(t, "older", response.Previous.Slug)
	assert.Nil(t, response.Next)
}

func TestGetPostBySlug_NotFoundMapsTo404(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.posts.EXPECT().
		GetPostBySlug(gomock.Any(), "missing").
		Return(models.PostWithNeighbors{}, store.ErrPostNotFound)

	request := httptest.NewRequest(http.MethodGet, "/api/post/post/missing", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreatePost_Created(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleAdmin)
	mocks.posts.EXPECT().
		CreatePost(gomock.Any(),
			models.Identity{UserID: "actor-id", Role: models.RoleAdmin},
			models.CreatePostRequest{Title: "Hello", Content: "body", Category: "teknologi", Image: "img"}).
		Return(models.Post{PostID: "p1", Slug: "hello"}, nil)

	body := `{"title":"Hello","content":"body","category":"teknologi","image":"img"}`
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/post/create", body))

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestCreatePost_ForbiddenMapsTo403(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleUser)
	mocks.posts.EXPECT().
		CreatePost(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Post{}, service.ErrForbidden)

	body := `{"title":"Hello","content":"body","category":"teknologi","image":"img"}`
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/post/create", body))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestDeletePost_Acknowledges(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleAdmin)
	mocks.posts.EXPECT().
		DeletePost(gomock.Any(), models.Identity{UserID: "actor-id", Role: models.RoleAdmin}, "p1").
		Return(nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodDelete, "/api/post/delete/p1", ""))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.MessageResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "the post has been deleted", response.Message)
}
