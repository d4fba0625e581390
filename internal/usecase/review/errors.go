// Package review provides use cases for the human review workflow.
// It implements listing, editing, approving and rejecting processed articles,
// and maintains the approved-subset artifact consumed by podcast generation.
package review

import "errors"

// Sentinel errors for review use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// This is the one error category an operator can act on directly.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is empty or malformed.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
