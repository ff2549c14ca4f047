package model

import "errors"

var (
	// Authentication outcomes. ErrInvalidCredentials covers both unknown
	// username and wrong password so the two stay indistinguishable to a
	// caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Lookup errors. ErrUserNotFound must never leak through the login
	// path; it exists for internal flows like identity resolution.
	ErrUserNotFound     = errors.New("user not found")
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrStoreUnavailable marks a record-store connectivity failure. It is
	// the one failure surfaced distinctly (503) because it is operational,
	// not an authorization outcome.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrInvalidInput = errors.New("invalid input")
)
