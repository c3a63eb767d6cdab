package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
	"github.com/jurnalresonansi/resonansi-api/internal/utils"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// postService is the concrete implementation of PostService. Article
// creation is reserved for admins; updates and deletions are allowed
// for the author or an admin.
type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given
// repositories. The user repository supplies the author display name
// recorded on each article.
func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreatePost publishes a new article. Admin only.
//
// All payload fields are required, the category must belong to the
// fixed category set, and the URL slug is derived from the title. The
// author display name is resolved from the actor's account at creation
// time.
func (p *postService) CreatePost(ctx context.Context, actor models.Identity, request models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if !isAdmin(actor) {
		log.Error().Str("actor_id", actor.UserID).Msg("actor is not allowed to create posts")
		return models.Post{}, ErrForbidden
	}
	if request.Title == "" || request.Content == "" || request.Category == "" || request.Image == "" {
		return models.Post{}, ErrInvalidDataProvided
	}
	if !models.IsAllowedCategory(request.Category) {
		return models.Post{}, ErrValidationCategory
	}

	author, err := p.userRepository.FindUserByID(ctx, actor.UserID)
	if err != nil {
		log.Err(err).Str("actor_id", actor.UserID).Msg("author lookup failed")
		return models.Post{}, fmt.Errorf("author lookup failed: %w", err)
	}

	post := models.Post{
		PostID:     uuid.NewString(),
		UserID:     actor.UserID,
		AuthorName: author.Username,
		Title:      request.Title,
		Content:    request.Content,
		Category:   request.Category,
		Image:      request.Image,
		Slug:       utils.Slugify(request.Title),
	}

	createdPost, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("title", post.Title).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// GetPostBySlug returns an article together with references to its
// timeline neighbors for previous/next navigation.
func (p *postService) GetPostBySlug(ctx context.Context, slug string) (models.PostWithNeighbors, error) {
	log := logger.FromContext(ctx)

	if slug == "" {
		return models.PostWithNeighbors{}, ErrInvalidDataProvided
	}

	post, err := p.postRepository.FindPostBySlug(ctx, slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("post search by slug failed")
		return models.PostWithNeighbors{}, fmt.Errorf("post search by slug failed: %w", err)
	}

	previous, next, err := p.postRepository.FindAdjacentPosts(ctx, post.CreatedAt)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("adjacent post lookup failed")
		return models.PostWithNeighbors{}, fmt.Errorf("adjacent post lookup failed: %w", err)
	}

	return models.PostWithNeighbors{
		Post:     post,
		Previous: previous,
		Next:     next,
	}, nil
}

// UpdatePost applies a patch to an article. The actor must be the
// article author or an admin; at least one field must be present, a
// patched category must belong to the category set, and a patched
// title regenerates the slug.
func (p *postService) UpdatePost(ctx context.Context, actor models.Identity, postID string, patch models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	if patch.Empty() {
		return models.Post{}, ErrNothingToUpdate
	}
	if patch.Category != nil && !models.IsAllowedCategory(*patch.Category) {
		return models.Post{}, ErrValidationCategory
	}

	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post search by id failed")
		return models.Post{}, fmt.Errorf("post search by id failed: %w", err)
	}

	if !canMutate(actor, post.UserID) {
		log.Error().
			Str("actor_id", actor.UserID).
			Str("post_id", postID).
			Msg("actor is not allowed to update this post")
		return models.Post{}, ErrForbidden
	}

	var slug string
	if patch.Title != nil {
		slug = utils.Slugify(*patch.Title)
	}

	updatedPost, err := p.postRepository.UpdatePost(ctx, postID, patch, slug)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	return updatedPost, nil
}

// DeletePost removes an article. The actor must be the article author
// or an admin.
func (p *postService) DeletePost(ctx context.Context, actor models.Identity, postID string) error {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post search by id failed")
		return fmt.Errorf("post search by id failed: %w", err)
	}

	if !canMutate(actor, post.UserID) {
		log.Error().
			Str("actor_id", actor.UserID).
			Str("post_id", postID).
			Msg("actor is not allowed to delete this post")
		return ErrForbidden
	}

	if err := p.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Str("post_id", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}

// ListPosts returns a filtered page of articles plus the total and
// last-month counters computed over the same filter.
func (p *postService) ListPosts(ctx context.Context, filter models.PostFilter, query models.ListQuery) (models.PostsResponse, error) {
	log := logger.FromContext(ctx)

	posts, err := p.postRepository.ListPosts(ctx, filter, query.Normalize())
	if err != nil {
		log.Err(err).Msg("post listing ended with error")
		return models.PostsResponse{}, fmt.Errorf("post listing ended with error: %w", err)
	}

	total, err := p.postRepository.CountPosts(ctx, filter, time.Time{})
	if err != nil {
		log.Err(err).Msg("post count ended with error")
		return models.PostsResponse{}, fmt.Errorf("post count ended with error: %w", err)
	}

	recent, err := p.postRepository.CountPosts(ctx, filter, time.Now().Add(-lastMonth))
	if err != nil {
		log.Err(err).Msg("recent post count ended with error")
		return models.PostsResponse{}, fmt.Errorf("recent post count ended with error: %w", err)
	}

	return models.PostsResponse{
		Posts:          posts,
		TotalPosts:     total,
		LastMonthPosts: recent,
	}, nil
}
