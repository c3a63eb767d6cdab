package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jurnalresonansi/resonansi-api/internal/adapter"
	"github.com/jurnalresonansi/resonansi-api/internal/config"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
	"github.com/jurnalresonansi/resonansi-api/internal/utils"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles local registration, credential verification, federated
// Google sign-in and the JWT token lifecycle, using a UserRepository
// for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up accounts.
	userRepository store.UserRepository

	// google resolves OAuth2 authorization codes to verified provider profiles.
	google adapter.GoogleProvider

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and Google provider, populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(userRepository store.UserRepository, google adapter.GoogleProvider, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		google:         google,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignUp registers a new local account.
//
// The requested role is deliberately dropped: every self-registered
// account starts with the regular user role regardless of what the
// payload claims. The password is stored as a bcrypt hash and the
// default avatar is derived from the e-mail address.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if username, e-mail or password is empty.
//   - ErrValidationUsernameLength if the username is not 3-20 characters.
//   - ErrValidationEmail if the e-mail is not a plausible address.
//   - ErrValidationPassword if the password is shorter than 6 characters.
//   - A wrapped storage error if persistence fails (e.g. the username
//     or e-mail is already taken, see store.ErrUserAlreadyExists).
func (a *authService) SignUp(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Email == "" || request.Password == "" {
		log.Error().Str("username", request.Username).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if len(request.Username) < 3 || len(request.Username) > 20 {
		return models.User{}, ErrValidationUsernameLength
	}
	if !emailPattern.MatchString(strings.ToLower(strings.TrimSpace(request.Email))) {
		return models.User{}, ErrValidationEmail
	}
	if len(request.Password) < 6 {
		return models.User{}, ErrValidationPassword
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:         uuid.NewString(),
		Username:       request.Username,
		Email:          strings.ToLower(strings.TrimSpace(request.Email)),
		Password:       hashedPassword,
		ProfilePicture: utils.GravatarURL(request.Email),
		Role:           models.RoleUser,
		AuthProvider:   models.ProviderLocal,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// SignIn authenticates an existing local account.
//
// Failure checks run in a fixed order so clients get consistent
// responses: unknown account first, then the deactivation gate, then
// the password comparison. A deactivated account is rejected even with
// a valid password.
//
// Returns the authenticated account or:
//   - ErrInvalidDataProvided if e-mail or password is empty.
//   - A wrapped store.ErrNoUserWasFound if no account carries the e-mail.
//   - ErrAccountDeactivated if the account is deactivated.
//   - ErrWrongPassword if the password does not match.
func (a *authService) SignIn(ctx context.Context, request models.SigninRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Msg("invalid signin data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !foundUser.IsActive {
		log.Error().Str("user_id", foundUser.UserID).Msg("deactivated account attempted to sign in")
		return models.User{}, ErrAccountDeactivated
	}

	if !utils.ComparePassword(foundUser.Password, request.Password) {
		log.Error().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GoogleAuthURL returns the provider consent page URL carrying the
// given anti-forgery state value.
func (a *authService) GoogleAuthURL(state string) string {
	return a.google.AuthCodeURL(state)
}

// GoogleSignIn completes the federated login flow.
//
// The authorization code is resolved to a provider profile; the profile
// e-mail is the account linking key. An existing account with that
// e-mail is reused exactly as stored, role and all, but a deactivated
// account is rejected the same way local signin rejects it. When no
// account matches, a fresh one is provisioned with a generated
// username, the provider's picture and an undisclosed random
// placeholder password, so the new account can never sign in locally.
//
// Returns the signed-in account or:
//   - A wrapped provider error if the code exchange or profile fetch fails.
//   - ErrInvalidDataProvided if the profile carries no e-mail.
//   - ErrAccountDeactivated if the linked account is deactivated.
func (a *authService) GoogleSignIn(ctx context.Context, code string) (models.User, error) {
	log := logger.FromContext(ctx)

	if code == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	profile, err := a.google.FetchProfile(ctx, code)
	if err != nil {
		log.Err(err).Msg("fetching provider profile failed")
		return models.User{}, fmt.Errorf("fetching provider profile failed: %w", err)
	}
	if profile.Email == "" {
		log.Error().Str("google_id", profile.GoogleID).Msg("provider profile carries no email")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(profile.Email))
	if err == nil {
		if !foundUser.IsActive {
			log.Error().Str("user_id", foundUser.UserID).Msg("deactivated account attempted a federated sign in")
			return models.User{}, ErrAccountDeactivated
		}
		return foundUser, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	placeholder, err := utils.RandomPlaceholderPassword()
	if err != nil {
		log.Err(err).Msg("placeholder password generation failed")
		return models.User{}, fmt.Errorf("placeholder password generation failed: %w", err)
	}

	user := models.User{
		UserID:         uuid.NewString(),
		Username:       generateUsername(profile.Name),
		Email:          strings.ToLower(profile.Email),
		Password:       placeholder,
		ProfilePicture: profile.Picture,
		Role:           models.RoleUser,
		GoogleID:       profile.GoogleID,
		AuthProvider:   models.ProviderGoogle,
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("provisioning federated user ended with error")
		return models.User{}, fmt.Errorf("provisioning federated user ended with error: %w", err)
	}

	return createdUser, nil
}

// emailPattern is a deliberately loose address shape check: one "@",
// no whitespace, a dot somewhere in the domain. Deliverability is the
// mail system's problem, not ours.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// generateUsername derives a handle from the provider display name: the
// name lowercased with spaces removed, plus a random 4-digit suffix to
// dodge collisions.
func generateUsername(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if base == "" {
		base = "user"
	}
	return fmt.Sprintf("%s%04d", base, rand.Intn(10000))
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// account id and role, the configured tokenIssuer as the "iss" claim,
// and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the
// signature and the issuer claim. Any validation failure (expired,
// wrong issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid
// so that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
