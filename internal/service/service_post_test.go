package service

import (
	"context"
	"testing"
	"time"

	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/mock"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
	"github.com/jurnalresonansi/resonansi-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPostService(t *testing.T) (PostService, *mock.MockPostRepository, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	postRepo := mock.NewMockPostRepository(ctrl)
	userRepo := mock.NewMockUserRepository(ctrl)
	return NewPostService(postRepo, userRepo, logger.Nop()), postRepo, userRepo
}

func validCreatePostRequest() models.CreatePostRequest {
	return models.CreatePostRequest{
		Title:    "Hello, World! 2024",
		Content:  "body",
		Category: "pendidikan",
		Image:    "https://example.com/img.png",
	}
}

func TestCreatePost_AdminOnly(t *testing.T) {
	svc, _, _ := newTestPostService(t)

	_, err := svc.CreatePost(context.Background(), userActor, validCreatePostRequest())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreatePost_MissingFields(t *testing.T) {
	svc, _, _ := newTestPostService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.CreatePostRequest)
	}{
		{"no title", func(r *models.CreatePostRequest) { r.Title = "" }},
		{"no content", func(r *models.CreatePostRequest) { r.Content = "" }},
		{"no category", func(r *models.CreatePostRequest) { r.Category = "" }},
		{"no image", func(r *models.CreatePostRequest) { r.Image = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validCreatePostRequest()
			tt.mutate(&request)
			_, err := svc.CreatePost(ctx, adminActor, request)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestCreatePost_UnknownCategory(t *testing.T) {
	svc, _, _ := newTestPostService(t)

	request := validCreatePostRequest()
	request.Category = "gossip"

	_, err := svc.CreatePost(context.Background(), adminActor, request)
	assert.ErrorIs(t, err, ErrValidationCategory)
}

func TestCreatePost_DerivesSlugAndAuthor(t *testing.T) {
	svc, postRepo, userRepo := newTestPostService(t)
	ctx := context.Background()

	gomock.InOrder(
		userRepo.EXPECT().
			FindUserByID(ctx, adminActor.UserID).
			Return(models.User{UserID: adminActor.UserID, Username: "adminname"}, nil),
		postRepo.EXPECT().
			CreatePost(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, post models.Post) (models.Post, error) {
				assert.Equal(t, "hello-world-2024", post.Slug)
				assert.Equal(t, "adminname", post.AuthorName)
				assert.Equal(t, adminActor.UserID, post.UserID)
				assert.NotEmpty(t, post.PostID)
				return post, nil
			}),
	)

	created, err := svc.CreatePost(ctx, adminActor, validCreatePostRequest())
	require.NoError(t, err)
	assert.Equal(t, "hello-world-2024", created.Slug)
}

func TestCreatePost_DuplicateTitle(t *testing.T) {
	svc, postRepo, userRepo := newTestPostService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByID(ctx, adminActor.UserID).
		Return(models.User{UserID: adminActor.UserID, Username: "adminname"}, nil)
	postRepo.EXPECT().
		CreatePost(ctx, gomock.Any()).
		Return(models.Post{}, store.ErrPostAlreadyExists)

	_, err := svc.CreatePost(ctx, adminActor, validCreatePostRequest())
	assert.ErrorIs(t, err, store.ErrPostAlreadyExists)
}

func TestGetPostBySlug_WithNeighbors(t *testing.T) {
	svc, postRepo, _ := newTestPostService(t)
	ctx := context.Background()

	createdAt := time.Now()
	post := models.Post{PostID: "p2", Slug: "current", CreatedAt: createdAt}
	previous := &models.PostRef{Title: "Older", Slug: "older"}
	next := &models.PostRef{Title: "Newer", Slug: "newer"}

	gomock.InOrder(
		postRepo.EXPECT().FindPostBySlug(ctx, "current").Return(post, nil),
		postRepo.EXPECT().FindAdjacentPosts(ctx, createdAt).Return(previous, next, nil),
	)

	result, err := svc.GetPostBySlug(ctx, "current")
	require.NoError(t, err)
	assert.Equal(t, "p2", result.Post.PostID)
	assert.Equal(t, "older", result.Previous.Slug)
	assert.Equal(t, "newer", result.Next.Slug)
}

func TestGetPostBySlug_NotFound(t *testing.T) {
	svc, postRepo, _ := newTestPostService(t)
	ctx := context.Background()

	postRepo.EXPECT().
		FindPostBySlug(ctx, "missing").
		Return(models.Post{}, store.ErrPostNotFound)

	_, err := svc.GetPostBySlug(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestUpdatePost_AuthorAllowed(t *testing.T) {
	svc, postRepo, _ := newTestPostService(t)
	ctx := context.Background()

	title := "Updated Title"
	patch := models.PostUpdate{Title: &title}
	author := models.Identity{UserID: "author-id", Role: models.RoleUser}

	gomock.InOrder(
		postRepo.EXPECT().
			FindPostByID(ctx, "p1").
			Return(models.Post{PostID: "p1", UserID: "author-id"}, nil),
		postRepo.EXPECT().
			UpdatePost(ctx, "p1", patch, "updated-title").
			Return(models.Post{PostID: "p1", Title: title, Slug: "updated-title"}, nil),
	)

	updated, err := svc.UpdatePost(ctx, author, "p1", patch)
	require.NoError(t, err)
	assert.Equal(t, "updated-title", updated.Slug)
}

func TestUpdatePost_ForbiddenForStranger(t *testing.T) {
	svc, postRepo, _ := newTestPostService(t)
	ctx := context.Background()

	content := "edited"
	postRepo.EXPECT().
		FindPostByID(ctx, "p1").
		Return(models.Post{PostID: "p1", UserID: "author-id"}, nil)

	_, err := svc.UpdatePost(ctx, userActor, "p1", models.PostUpdate{Content: &content})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdatePost_EmptyPatch(t *testing.T) {
	svc, _, _ := newTestPostService(t)

	_, err := svc.UpdatePost(context.Background(), adminActor, "p1", models.PostUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestDeletePost_AdminAllowed(t *testing.T) {
	svc, postRepo, _ := newTestPostService(t)
	ctx := context.Background()

	gomock.InOrder(
		postRepo.EXPECT().
			FindPostByID(ctx, "p1").
			Return(models.Post{PostID: "p1", UserID: "author-id"}, nil),
		postRepo.EXPECT().DeletePost(ctx, "p1").Return(nil),
	)

	err := svc.DeletePost(ctx, adminActor, "p1")
	assert.NoError(t, err)
}

func TestDeletePost_ForbiddenForStranger(t *testing.T) {
	svc, postRepo, _ := newTestPostService(t)
	ctx := context.Background()

	postRepo.EXPECT().
		FindPostByID(ctx, "p1").
		Return(models.Post{PostID: "p1", UserID: "author-id"}, nil)

	err := svc.DeletePost(ctx, userActor, "p1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListPosts_CountersShareFilter(t *testing.T) {
	svc, postRepo, _ := newTestPostService(t)
	ctx := context.Background()

	filter := models.PostFilter{Category: "teknologi"}

	postRepo.EXPECT().
		ListPosts(ctx, filter, models.ListQuery{Limit: 9}).
		Return([]models.Post{{PostID: "p1"}}, nil)
	postRepo.EXPECT().
		CountPosts(ctx, filter, gomock.Any()).
		Return(int64(12), nil)
	postRepo.EXPECT().
		CountPosts(ctx, filter, gomock.Any()).
		Return(int64(3), nil)

	response, err := svc.ListPosts(ctx, filter, models.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, response.Posts, 1)
	assert.Equal(t, int64(12), response.TotalPosts)
	assert.Equal(t, int64(3), response.LastMonthPosts)
}
