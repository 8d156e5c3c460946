package database

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"database is locked", errors.New("database is locked"), true},
		{"table is locked", errors.New("database table is locked"), true},
		{"database is busy", errors.New("database is busy"), true},
		{"uppercase variant", errors.New("SQLITE_BUSY: database is Locked"), true},
		{"wrapped locked error", fmt.Errorf("query failed: %w", errors.New("database is locked")), true},
		{"syntax error", errors.New("near \"SELEC\": syntax error"), false},
		{"corruption", errors.New("database disk image is malformed"), false},
		{"not connected", ErrNotConnected, false},
		{"wrapped not connected", fmt.Errorf("lookup: %w", ErrNotConnected), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.expected {
				t.Errorf("IsTransient(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}
