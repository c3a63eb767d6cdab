package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// commentService is the concrete implementation of CommentService.
// Commenting and liking are open to any authenticated account; editing
// and deletion are allowed for the comment author or an admin.
type commentService struct {
	commentRepository store.CommentRepository
	postRepository    store.PostRepository
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService wired to the given
// repositories. The post repository guards against commenting on
// articles that do not exist.
func NewCommentService(commentRepository store.CommentRepository, postRepository store.PostRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
		logger:            logger,
	}
}

// CreateComment adds a comment to an existing article.
//
// The payload author id must match the actor: commenting on someone
// else's behalf is rejected even for admins. The target article must
// exist.
func (c *commentService) CreateComment(ctx context.Context, actor models.Identity, request models.CreateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if request.Content == "" || request.PostID == "" || request.UserID == "" {
		return models.Comment{}, ErrInvalidDataProvided
	}
	if request.UserID != actor.UserID {
		log.Error().
			Str("actor_id", actor.UserID).
			Str("payload_user_id", request.UserID).
			Msg("comment author does not match the authenticated user")
		return models.Comment{}, ErrCommentAuthorMismatch
	}

	if _, err := c.postRepository.FindPostByID(ctx, request.PostID); err != nil {
		log.Err(err).Str("post_id", request.PostID).Msg("post search by id failed")
		return models.Comment{}, fmt.Errorf("post search by id failed: %w", err)
	}

	comment := models.Comment{
		CommentID: uuid.NewString(),
		PostID:    request.PostID,
		UserID:    actor.UserID,
		Content:   request.Content,
	}

	createdComment, err := c.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Str("post_id", request.PostID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return createdComment, nil
}

// ListPostComments returns all comments of an article, newest first,
// with the author's current username and profile picture attached.
func (c *commentService) ListPostComments(ctx context.Context, postID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	if postID == "" {
		return nil, ErrInvalidDataProvided
	}

	comments, err := c.commentRepository.ListCommentsByPost(ctx, postID)
	if err != nil {
		log.Err(err).Str("post_id", postID).Msg("post comment listing ended with error")
		return nil, fmt.Errorf("post comment listing ended with error: %w", err)
	}

	return comments, nil
}

// ToggleLike flips the actor's like on a comment: liking when absent,
// unliking when present. The repository applies the flip atomically, so
// repeated toggles from concurrent requests cannot corrupt the counter.
func (c *commentService) ToggleLike(ctx context.Context, actor models.Identity, commentID string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if commentID == "" {
		return models.Comment{}, ErrInvalidDataProvided
	}

	updatedComment, err := c.commentRepository.ToggleLike(ctx, commentID, actor.UserID)
	if err != nil {
		log.Err(err).
			Str("comment_id", commentID).
			Str("actor_id", actor.UserID).
			Msg("comment like toggle ended with error")
		return models.Comment{}, fmt.Errorf("comment like toggle ended with error: %w", err)
	}

	return updatedComment, nil
}

// EditComment replaces a comment body. The actor must be the comment
// author or an admin; the replacement content must be non-empty.
func (c *commentService) EditComment(ctx context.Context, actor models.Identity, commentID, content string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if commentID == "" || content == "" {
		return models.Comment{}, ErrInvalidDataProvided
	}

	comment, err := c.commentRepository.FindCommentByID(ctx, commentID)
	if err != nil {
		log.Err(err).Str("comment_id", commentID).Msg("comment search by id failed")
		return models.Comment{}, fmt.Errorf("comment search by id failed: %w", err)
	}

	if !canMutate(actor, comment.UserID) {
		log.Error().
			Str("actor_id", actor.UserID).
			Str("comment_id", commentID).
			Msg("actor is not allowed to edit this comment")
		return models.Comment{}, ErrForbidden
	}

	updatedComment, err := c.commentRepository.UpdateCommentContent(ctx, commentID, content)
	if err != nil {
		log.Err(err).Str("comment_id", commentID).Msg("comment edit ended with error")
		return models.Comment{}, fmt.Errorf("comment edit ended with error: %w", err)
	}

	return updatedComment, nil
}

// DeleteComment removes a comment. The actor must be the comment author
// or an admin.
func (c *commentService) DeleteComment(ctx context.Context, actor models.Identity, commentID string) error {
	log := logger.FromContext(ctx)

	if commentID == "" {
		return ErrInvalidDataProvided
	}

	comment, err := c.commentRepository.FindCommentByID(ctx, commentID)
	if err != nil {
		log.Err(err).Str("comment_id", commentID).Msg("comment search by id failed")
		return fmt.Errorf("comment search by id failed: %w", err)
	}

	if !canMutate(actor, comment.UserID) {
		log.Error().
			Str("actor_id", actor.UserID).
			Str("comment_id", commentID).
			Msg("actor is not allowed to delete this comment")
		return ErrForbidden
	}

	if err := c.commentRepository.DeleteComment(ctx, commentID); err != nil {
		log.Err(err).Str("comment_id", commentID).Msg("comment deletion ended with error")
		return fmt.Errorf("comment deletion ended with error: %w", err)
	}

	return nil
}

// ListComments returns a page of comments across all articles plus the
// total and last-month counters. Admin only.
func (c *commentService) ListComments(ctx context.Context, actor models.Identity, query models.ListQuery) (models.CommentsResponse, error) {
	log := logger.FromContext(ctx)

	if !isAdmin(actor) {
		log.Error().Str("actor_id", actor.UserID).Msg("actor is not allowed to list all comments")
		return models.CommentsResponse{}, ErrForbidden
	}

	comments, err := c.commentRepository.ListComments(ctx, query.Normalize())
	if err != nil {
		log.Err(err).Msg("comment listing ended with error")
		return models.CommentsResponse{}, fmt.Errorf("comment listing ended with error: %w", err)
	}

	total, err := c.commentRepository.CountComments(ctx, time.Time{})
	if err != nil {
		log.Err(err).Msg("comment count ended with error")
		return models.CommentsResponse{}, fmt.Errorf("comment count ended with error: %w", err)
	}

	recent, err := c.commentRepository.CountComments(ctx, time.Now().Add(-lastMonth))
	if err != nil {
		log.Err(err).Msg("recent comment count ended with error")
		return models.CommentsResponse{}, fmt.Errorf("recent comment count ended with error: %w", err)
	}

	return models.CommentsResponse{
		Comments:          comments,
		TotalComments:     total,
		LastMonthComments: recent,
	}, nil
}
