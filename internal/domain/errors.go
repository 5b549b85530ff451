// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUserID is returned when a user ID is missing.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptyUsername is returned when a username is missing or blank.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrUsernameTooLong is returned when a username exceeds the allowed length.
	ErrUsernameTooLong = errors.New("username must be at most 64 characters long")

	// ErrEmptyPassword is returned when neither a plaintext password nor a
	// hashed password is present on a user.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's 72-byte limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")

	// ErrEmptyTaskID is returned when a task ID is missing.
	ErrEmptyTaskID = errors.New("task ID cannot be empty")

	// ErrEmptyTitle is returned when a task title is missing or blank.
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrInvalidTaskStatus is returned when a task status is not a known value.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
