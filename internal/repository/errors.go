package repository

import "errors"

var (
	// ErrNotFound is wrapped by all lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a version mismatch on replace: another writer
	// committed first and the caller must re-read and retry.
	ErrConflict = errors.New("version conflict")
)
