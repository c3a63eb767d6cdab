package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/models"
)

var userTestColumns = []string{
	"user_id", "username", "email", "password", "profile_picture",
	"role", "google_id", "auth_provider", "is_active", "created_at", "updated_at",
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRow(user models.User, now time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows(userTestColumns).
		AddRow(user.UserID, user.Username, user.Email, user.Password, user.ProfilePicture,
			user.Role, user.GoogleID, user.AuthProvider, user.IsActive, now, now)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		UserID:         "11111111-1111-1111-1111-111111111111",
		Username:       "johndoe1",
		Email:          "john@example.com",
		Password:       "hash",
		ProfilePicture: "https://www.gravatar.com/avatar/john@example.com?d=identicon",
		Role:           models.RoleUser,
		AuthProvider:   models.ProviderLocal,
		IsActive:       true,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.UserID, user.Username, user.Email, user.Password,
			user.ProfilePicture, user.Role, user.GoogleID, user.AuthProvider).
		WillReturnRows(userRow(user, time.Now()))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != user.UserID {
		t.Errorf("expected UserID=%s, got %s", user.UserID, created.UserID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "johndoe1", Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Username: "johndoe1"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		UserID:       "11111111-1111-1111-1111-111111111111",
		Username:     "johndoe1",
		Email:        "john@example.com",
		Role:         models.RoleUser,
		AuthProvider: models.ProviderLocal,
		IsActive:     true,
	}

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john@example.com").
		WillReturnRows(userRow(user, time.Now()))

	found, err := repo.FindUserByEmail(ctx, "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "johndoe1" {
		t.Errorf("expected username johndoe1, got %s", found.Username)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "missing@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"user_id"}).AddRow("id") // wrong shape
	mock.ExpectQuery("SELECT user_id").
		WithArgs("id").
		WillReturnRows(rows)

	_, err := repo.FindUserByID(ctx, "id")
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestUpdateUser_AppliesOnlyPatchedFields(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	username := "newname1"
	password := "newhash"
	user := models.User{
		UserID:   "11111111-1111-1111-1111-111111111111",
		Username: username,
		Password: password,
	}

	mock.ExpectQuery("UPDATE users SET updated_at").
		WithArgs(username, password, user.UserID).
		WillReturnRows(userRow(user, time.Now()))

	updated, err := repo.UpdateUser(ctx, user.UserID, models.UserUpdate{
		Username: &username,
		Password: &password,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Username != username {
		t.Errorf("expected username %s, got %s", username, updated.Username)
	}
}

func TestBuildUpdateUserQuery_Placeholders(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	email := "new@example.com"
	query, args := repo.buildUpdateUserQuery("uid", models.UserUpdate{Email: &email})

	if !strings.Contains(query, "email = $1") {
		t.Errorf("expected email placeholder $1, got query: %s", query)
	}
	if !strings.Contains(query, "WHERE user_id = $2") {
		t.Errorf("expected user_id placeholder $2, got query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if args[0] != email || args[1] != "uid" {
		t.Errorf("unexpected args order: %v", args)
	}
}

func TestUpdateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	email := "taken@example.com"

	mock.ExpectQuery("UPDATE users SET updated_at").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateUser(ctx, "uid", models.UserUpdate{Email: &email})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(ctx, "missing")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(userTestColumns).
		AddRow("u1", "first123", "first@example.com", "hash", "", models.RoleUser, "", models.ProviderLocal, true, now, now).
		AddRow("u2", "second12", "second@example.com", "hash", "", models.RoleAdmin, "", models.ProviderLocal, true, now, now)

	mock.ExpectQuery("SELECT user_id").
		WillReturnRows(rows)

	users, err := repo.ListUsers(ctx, models.ListQuery{Limit: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].Role != models.RoleAdmin {
		t.Errorf("expected second user to be admin, got %s", users[1].Role)
	}
}

func TestCountUsers_Since(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	since := time.Now().Add(-30 * 24 * time.Hour)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	total, err := repo.CountUsers(ctx, since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 7 {
		t.Errorf("expected 7, got %d", total)
	}
}
