package database

import (
	"errors"
	"strings"
)

// ErrNotConnected is returned when a read is attempted before Open succeeded
// or after Close. This is a programmer error, never retried.
var ErrNotConnected = errors.New("database is not connected")

// IsTransient reports whether an error indicates transient storage
// contention that a retry may recover from.
//
// The string matching is necessary because the SQLite driver surfaces
// contention as its own error types ("database is locked", "database table
// is locked", "database is busy") that cannot be wrapped at the source.
// Every other storage error is permanent and must propagate unretried.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotConnected) {
		return false
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "locked") || strings.Contains(msg, "busy")
}
