package usercenter

import "github.com/goliatone/go-errors"

const (
	TextCodeMissingInput      = "user_missing_input"
	TextCodeAccountTooShort   = "user_account_too_short"
	TextCodePasswordTooShort  = "user_password_too_short"
	TextCodePlanetCodeTooLong = "user_planet_code_too_long"
	TextCodeInvalidCharacters = "user_account_invalid_characters"
	TextCodePasswordMismatch  = "user_password_mismatch"
	TextCodeAccountTaken      = "user_account_taken"
	TextCodePlanetCodeTaken   = "user_planet_code_taken"
	TextCodeInvalidCreds      = "user_invalid_credentials"
	TextCodeNotLoggedIn       = "user_not_logged_in"
	TextCodeNoPermission      = "user_no_permission"
	TextCodeNotFound          = "user_not_found"
	TextCodeInvalidUserID     = "user_invalid_id"
	TextCodeEmptyPassword     = "user_empty_password"
	TextCodeSessionRequired   = "user_session_required"
)

// ErrMissingInput is returned when a required registration or login field is blank.
var ErrMissingInput = errors.New("missing input", errors.CategoryValidation).
	WithTextCode(TextCodeMissingInput).
	WithCode(errors.CodeBadRequest)

// ErrAccountTooShort is returned when the account name has fewer than 4 characters.
var ErrAccountTooShort = errors.New("account too short", errors.CategoryValidation).
	WithTextCode(TextCodeAccountTooShort).
	WithCode(errors.CodeBadRequest)

// ErrPasswordTooShort is returned when the password or its confirmation has fewer than 8 characters.
var ErrPasswordTooShort = errors.New("password too short", errors.CategoryValidation).
	WithTextCode(TextCodePasswordTooShort).
	WithCode(errors.CodeBadRequest)

// ErrPlanetCodeTooLong is returned when the planet code has more than 5 characters.
var ErrPlanetCodeTooLong = errors.New("planet code too long", errors.CategoryValidation).
	WithTextCode(TextCodePlanetCodeTooLong).
	WithCode(errors.CodeBadRequest)

// ErrInvalidCharacters is returned when the account name contains whitespace
// or characters outside the allowed set.
var ErrInvalidCharacters = errors.New("invalid characters", errors.CategoryValidation).
	WithTextCode(TextCodeInvalidCharacters).
	WithCode(errors.CodeBadRequest)

// ErrPasswordMismatch is returned when password and confirmation differ.
var ErrPasswordMismatch = errors.New("passwords do not match", errors.CategoryValidation).
	WithTextCode(TextCodePasswordMismatch).
	WithCode(errors.CodeBadRequest)

// ErrAccountTaken is returned when the account name is already registered.
var ErrAccountTaken = errors.New("account already taken", errors.CategoryConflict).
	WithTextCode(TextCodeAccountTaken).
	WithCode(errors.CodeConflict)

// ErrPlanetCodeTaken is returned when the planet code is already registered.
var ErrPlanetCodeTaken = errors.New("planet code already taken", errors.CategoryConflict).
	WithTextCode(TextCodePlanetCodeTaken).
	WithCode(errors.CodeConflict)

// ErrInvalidCredentials is returned for both an unknown account and a
// wrong password so callers cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("account or password incorrect", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrNotLoggedIn is returned when no identity is bound to the session.
var ErrNotLoggedIn = errors.New("not logged in", errors.CategoryAuth).
	WithTextCode(TextCodeNotLoggedIn).
	WithCode(errors.CodeUnauthorized)

// ErrNoPermission is returned when the bound identity lacks the admin role.
var ErrNoPermission = errors.New("no permission", errors.CategoryAuthz).
	WithTextCode(TextCodeNoPermission).
	WithCode(errors.CodeForbidden)

// ErrUserNotFound is returned when a referenced user id no longer resolves.
var ErrUserNotFound = errors.New("user not found", errors.CategoryNotFound).
	WithTextCode(TextCodeNotFound).
	WithCode(errors.CodeNotFound)

// ErrInvalidUserID is returned for non-positive user ids.
var ErrInvalidUserID = errors.New("invalid parameter", errors.CategoryValidation).
	WithTextCode(TextCodeInvalidUserID).
	WithCode(errors.CodeBadRequest)

// ErrNoEmptyPassword is returned when an empty plaintext reaches the hasher.
var ErrNoEmptyPassword = errors.New("password must not be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword).
	WithCode(errors.CodeBadRequest)

// ErrSessionRequired is returned when an operation that binds identity
// is called without a session context.
var ErrSessionRequired = errors.New("session context required", errors.CategoryValidation).
	WithTextCode(TextCodeSessionRequired).
	WithCode(errors.CodeBadRequest)
