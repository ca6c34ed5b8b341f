package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the email/password
	// pair does not match any known account.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotLoggedIn is returned by operations that require an
	// authenticated user when no session is active.
	ErrNotLoggedIn = errors.New("login required")

	// ErrPermissionDenied is returned by administrative operations when the
	// active session lacks admin privileges.
	ErrPermissionDenied = errors.New("admin access required")

	// ErrRecordNotFound is returned when an operation targets an id that is
	// not in the catalog.
	ErrRecordNotFound = errors.New("document not found")
)
