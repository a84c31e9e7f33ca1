package services

import "errors"

// Sentinel errors handlers map onto HTTP statuses.
var (
	// ErrNotFound means the keyed record (or attachment) does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a create collided with an existing key.
	ErrConflict = errors.New("record already exists")
	// ErrFileMissing means an attachment row exists but its file is gone
	// from disk.
	ErrFileMissing = errors.New("document file missing")
)
