package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/models"
)

var commentTestColumns = []string{
	"comment_id", "post_id", "user_id", "content",
	"likes", "number_of_likes", "created_at", "updated_at",
}

func newTestCommentRepo(t *testing.T) (*commentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &commentRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateComment_Success(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	comment := models.Comment{
		CommentID: "c1",
		PostID:    "p1",
		UserID:    "u1",
		Content:   "nice article",
	}

	rows := sqlmock.NewRows(commentTestColumns).
		AddRow(comment.CommentID, comment.PostID, comment.UserID, comment.Content,
			[]byte("{}"), 0, now, now)

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(comment.CommentID, comment.PostID, comment.UserID, comment.Content).
		WillReturnRows(rows)

	created, err := repo.CreateComment(ctx, comment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.NumberOfLikes != 0 {
		t.Errorf("expected 0 likes, got %d", created.NumberOfLikes)
	}
	if len(created.Likes) != 0 {
		t.Errorf("expected empty likes set, got %v", created.Likes)
	}
}

func TestToggleLike_AddsLike(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(commentTestColumns).
		AddRow("c1", "p1", "u1", "nice article", []byte("{u2}"), 1, now, now)

	mock.ExpectQuery("UPDATE comments").
		WithArgs("c1", "u2").
		WillReturnRows(rows)

	updated, err := repo.ToggleLike(ctx, "c1", "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.NumberOfLikes != 1 {
		t.Errorf("expected 1 like, got %d", updated.NumberOfLikes)
	}
	if len(updated.Likes) != 1 || updated.Likes[0] != "u2" {
		t.Errorf("expected likes [u2], got %v", updated.Likes)
	}
}

func TestToggleLike_NotFound(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE comments").
		WithArgs("missing", "u1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ToggleLike(ctx, "missing", "u1")
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestUpdateCommentContent_Success(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(commentTestColumns).
		AddRow("c1", "p1", "u1", "edited", []byte("{}"), 0, now, now)

	mock.ExpectQuery("UPDATE comments").
		WithArgs("c1", "edited").
		WillReturnRows(rows)

	updated, err := repo.UpdateCommentContent(ctx, "c1", "edited")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Content != "edited" {
		t.Errorf("expected edited content, got %s", updated.Content)
	}
}

func TestDeleteComment_NotFound(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteComment(ctx, "missing")
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestListCommentsByPost_JoinsAuthorFields(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"comment_id", "post_id", "user_id", "content",
		"likes", "number_of_likes", "created_at", "updated_at",
		"username", "profile_picture",
	}).
		AddRow("c2", "p1", "u2", "second", []byte("{u1,u3}"), 2, now, now, "second12", "https://example.com/2.png").
		AddRow("c1", "p1", "u1", "first", []byte("{}"), 0, now, now, "first123", "https://example.com/1.png")

	mock.ExpectQuery("SELECT c.comment_id").
		WithArgs("p1").
		WillReturnRows(rows)

	comments, err := repo.ListCommentsByPost(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Username != "second12" {
		t.Errorf("expected joined username second12, got %s", comments[0].Username)
	}
	if len(comments[0].Likes) != 2 {
		t.Errorf("expected 2 likes decoded, got %v", comments[0].Likes)
	}
}
