// Package common defines the sentinel errors shared by the realverse store,
// quiz engine and media ingest. Callers should use errors.Is to match these
// values; typed errors carrying details implement Is so they match too.
package common

import "errors"

var (
	// Collection-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrIDExhausted = errors.New("could not generate a unique id")

	// Input validation errors.
	ErrValidation = errors.New("validation error")

	// Quiz errors.
	ErrIncomplete        = errors.New("quiz incomplete")
	ErrOutOfRange        = errors.New("answer out of range")
	ErrUnmatched         = errors.New("score matches no result band")
	ErrInvalidDefinition = errors.New("invalid quiz definition")

	// Media ingest errors.
	ErrUnsupportedOrUnreadable = errors.New("unsupported or unreadable media")

	// Persistence errors.
	//
	// ErrCorruptState is never returned to callers of the store, it is
	// recovered by substituting the seed default and only logged.
	ErrPersistFailed = errors.New("persist failed")
	ErrCorruptState  = errors.New("corrupt state")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)
