package domain

import "errors"

// Common domain errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid view state transition")
)

// Collaborator errors
var (
	// ErrNetworkFailure covers a rejected, unreachable or unreadable collaborator call
	ErrNetworkFailure = errors.New("network failure")
	// ErrDuplicateSubmission is returned while an identical action is still in flight
	ErrDuplicateSubmission = errors.New("submission already in progress")
)

// Content errors
var (
	ErrPostNotFound    = errors.New("blog post not found")
	ErrRequestNotFound = errors.New("donation request not found")
)
