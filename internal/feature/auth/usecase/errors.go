// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrBadRequest is returned when a request fails field validation.
	ErrBadRequest = errors.New("bad request")

	// ErrInvalidEmailFormat is returned when the email fails the format check.
	ErrInvalidEmailFormat = errors.New("invalid email format")

	// ErrInvalidName is returned when a name field contains characters
	// outside the allowed alphanumeric set.
	ErrInvalidName = errors.New("name can only contain alphanumeric characters")

	// ErrUserNotFound is returned when no account matches the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create an account
	// with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrEmailNotVerified is returned when an operation requires a completed
	// OTP verification and none is on record for the email.
	ErrEmailNotVerified = errors.New("user email not verified")

	// ErrOAuthLoginRequired is returned when a password login is attempted
	// against a federated-identity account.
	ErrOAuthLoginRequired = errors.New("login with google oauth")

	// ErrInvalidCredentials is returned when the submitted password does not
	// match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrOTPExpired is returned when no pending OTP exists for the email.
	ErrOTPExpired = errors.New("otp expired")

	// ErrOTPInvalid is returned when the submitted code does not match the
	// pending OTP.
	ErrOTPInvalid = errors.New("invalid otp")

	// ErrResetTokenInvalid is returned when a password-reset credential is
	// expired, malformed, or has no matching outstanding entry.
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")

	// ErrGoogleTokenInvalid is returned when a federated ID token fails
	// signature or audience validation.
	ErrGoogleTokenInvalid = errors.New("invalid google token")
)
