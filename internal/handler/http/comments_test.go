package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jurnalresonansi/resonansi-api/internal/service"
	"github.com/jurnalresonansi/resonansi-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateComment_Created(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleUser)
	mocks.comments.EXPECT().
		CreateComment(gomock.Any(),
			models.Identity{UserID: "actor-id", Role: models.RoleUser},
			models.CreateCommentRequest{Content: "nice", PostID: "p1", UserID: "actor-id"}).
		Return(models.Comment{CommentID: "c1", Content: "nice"}, nil)

	body := `{"content":"nice","postId":"p1","userId":"actor-id"}`
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/comment/create", body))

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestCreateComment_AuthorMismatchMapsTo400(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleUser)
	mocks.comments.EXPECT().
		CreateComment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Comment{}, service.ErrCommentAuthorMismatch)

	body := `{"content":"spoofed","postId":"p1","userId":"someone-else"}`
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/comment/create", body))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetPostComments_PublicListing(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.comments.EXPECT().
		ListPostComments(gomock.Any(), "p1").
		Return([]models.Comment{
			{CommentID: "c2", Username: "second12"},
			{CommentID: "c1", Username: "first123"},
		}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/comment/getPostComments/p1", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var comments []models.Comment
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&comments))
	require.Len(t, comments, 2)
	assert.Equal(t, "second12", comments[0].Username)
}

func TestLikeComment_ReturnsUpdatedComment(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleUser)
	mocks.comments.EXPECT().
		ToggleLike(gomock.Any(), models.Identity{UserID: "actor-id", Role: models.RoleUser}, "c1").
		Return(models.Comment{CommentID: "c1", Likes: []string{"actor-id"}, NumberOfLikes: 1}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodPut, "/api/comment/likeComment/c1", ""))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var comment models.Comment
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&comment))
	assert.Equal(t, 1, comment.NumberOfLikes)
}

func TestEditComment_PassesContent(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleUser)
	mocks.comments.EXPECT().
		EditComment(gomock.Any(), models.Identity{UserID: "actor-id", Role: models.RoleUser}, "c1", "edited").
		Return(models.Comment{CommentID: "c1", Content: "edited"}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodPut, "/api/comment/editComment/c1", `{"content":"edited"}`))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDeleteComment_Acknowledges(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleAdmin)
	mocks.comments.EXPECT().
		DeleteComment(gomock.Any(), models.Identity{UserID: "actor-id", Role: models.RoleAdmin}, "c1").
		Return(nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodDelete, "/api/comment/deleteComment/c1", ""))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.MessageResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "comment has been deleted", response.Message)
}

func TestGetComments_ForbiddenMapsTo403(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleUser)
	mocks.comments.EXPECT().
		ListComments(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.CommentsResponse{}, service.ErrForbidden)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodGet, "/api/comment/getcomments", ""))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
