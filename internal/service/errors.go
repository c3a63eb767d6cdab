package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrAccountDeactivated  = errors.New("account is deactivated")
	ErrForbidden           = errors.New("operation is not allowed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationUsername       = errors.New("username must be 7-20 lowercase letters or digits without spaces")
	ErrValidationUsernameLength = errors.New("username must be 3-20 characters")
	ErrValidationEmail          = errors.New("invalid email address")
	ErrValidationPassword       = errors.New("password must be at least 6 characters")
	ErrValidationCategory       = errors.New("unknown category")
	ErrValidationRole           = errors.New("unknown role")
	ErrEmailAlreadyInUse        = errors.New("email is already in use")
	ErrNothingToUpdate          = errors.New("no fields to update")
	ErrCommentAuthorMismatch    = errors.New("comment author does not match the authenticated user")

	// ErrDanglingDownload signals that the stored object was removed but
	// the database record deletion failed, leaving an entry that points
	// at a missing object.
	ErrDanglingDownload = errors.New("download entry references a deleted object")
)
