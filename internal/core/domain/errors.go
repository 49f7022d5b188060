package domain

import "errors"

var (
	// ErrMissingCredentials is returned when the login payload lacks a
	// username or password.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrUserNotFound is returned when no account matches the given
	// username or id. Login distinguishes this (404) from a wrong
	// password (401).
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned when the candidate digest does not match
	// the stored one.
	ErrWrongPassword = errors.New("wrong password")

	// ErrUserExists is returned when creating an account whose username is
	// already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrJWTConfigMissing is raised at issuance time when the signing
	// secret, issuer or audience is not configured. Fatal, never retried.
	ErrJWTConfigMissing = errors.New("jwt configuration is missing")

	// ErrTokenMalformed is raised when a freshly issued token does not have
	// the compact three-segment form. Fatal server error, never returned
	// to the client as a token.
	ErrTokenMalformed = errors.New("token generation failed")

	ErrPatientNotFound   = errors.New("patient not found")
	ErrPatientExists     = errors.New("patient already exists")
	ErrScreeningNotFound = errors.New("screening record not found")
)
