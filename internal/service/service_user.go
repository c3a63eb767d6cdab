package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
	"github.com/jurnalresonansi/resonansi-api/internal/utils"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// lastMonth is the window used by the listing counters.
const lastMonth = 30 * 24 * time.Hour

// userService is the concrete implementation of UserService. Every
// mutating operation authorizes the actor before touching storage:
// self-service operations require ownership or the admin role, account
// management requires the admin role.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given
// UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns a single account by id.
func (u *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateUser applies a self-service patch to an account.
//
// The actor must own the account or be an admin. A patched username
// must be 7-20 lowercase letters or digits without spaces; a patched
// e-mail must not belong to another account; a patched password must be
// at least 6 characters and is re-hashed before storage.
func (u *userService) UpdateUser(ctx context.Context, actor models.Identity, userID string, patch models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if !canMutate(actor, userID) {
		log.Error().
			Str("actor_id", actor.UserID).
			Str("user_id", userID).
			Msg("actor is not allowed to update this account")
		return models.User{}, ErrForbidden
	}
	if patch.Empty() {
		return models.User{}, ErrNothingToUpdate
	}

	if patch.Username != nil && !validUsername(*patch.Username) {
		return models.User{}, ErrValidationUsername
	}

	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &email

		owner, err := u.userRepository.FindUserByEmail(ctx, email)
		if err == nil && owner.UserID != userID {
			return models.User{}, ErrEmailAlreadyInUse
		}
		if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("user_id", userID).Msg("email ownership check failed")
			return models.User{}, fmt.Errorf("email ownership check failed: %w", err)
		}
	}

	if patch.Password != nil {
		if len(*patch.Password) < 6 {
			return models.User{}, ErrValidationPassword
		}
		hashed, err := utils.HashPassword(*patch.Password)
		if err != nil {
			log.Err(err).Str("user_id", userID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		patch.Password = &hashed
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, userID, patch)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// validUsername enforces the handle rules: 7-20 characters, lowercase
// letters and digits only.
func validUsername(username string) bool {
	if len(username) < 7 || len(username) > 20 {
		return false
	}
	for _, r := range username {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// UpdateRole changes an account role. Admin only; the new role must be
// a member of the closed role set.
func (u *userService) UpdateRole(ctx context.Context, actor models.Identity, userID, role string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !isAdmin(actor) {
		log.Error().Str("actor_id", actor.UserID).Msg("actor is not allowed to change roles")
		return models.User{}, ErrForbidden
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return models.User{}, ErrValidationRole
	}

	updatedUser, err := u.userRepository.UpdateUserRole(ctx, userID, role)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("role", role).Msg("role update ended with error")
		return models.User{}, fmt.Errorf("role update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes an account permanently. Admin only; owners cannot
// delete their own account.
func (u *userService) DeleteUser(ctx context.Context, actor models.Identity, userID string) error {
	log := logger.FromContext(ctx)

	if !isAdmin(actor) {
		log.Error().
			Str("actor_id", actor.UserID).
			Str("user_id", userID).
			Msg("actor is not allowed to delete this account")
		return ErrForbidden
	}

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

// ListUsers returns a page of accounts plus the total and last-month
// counters. Admin only.
func (u *userService) ListUsers(ctx context.Context, actor models.Identity, query models.ListQuery) (models.UsersResponse, error) {
	log := logger.FromContext(ctx)

	if !isAdmin(actor) {
		log.Error().Str("actor_id", actor.UserID).Msg("actor is not allowed to list accounts")
		return models.UsersResponse{}, ErrForbidden
	}

	users, err := u.userRepository.ListUsers(ctx, query.Normalize())
	if err != nil {
		log.Err(err).Msg("user listing ended with error")
		return models.UsersResponse{}, fmt.Errorf("user listing ended with error: %w", err)
	}

	total, err := u.userRepository.CountUsers(ctx, time.Time{})
	if err != nil {
		log.Err(err).Msg("user count ended with error")
		return models.UsersResponse{}, fmt.Errorf("user count ended with error: %w", err)
	}

	recent, err := u.userRepository.CountUsers(ctx, time.Now().Add(-lastMonth))
	if err != nil {
		log.Err(err).Msg("recent user count ended with error")
		return models.UsersResponse{}, fmt.Errorf("recent user count ended with error: %w", err)
	}

	return models.UsersResponse{
		Users:          users,
		TotalUsers:     total,
		LastMonthUsers: recent,
	}, nil
}
