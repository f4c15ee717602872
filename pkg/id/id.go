// Package id hands out identifiers for tokens and requests.
package id

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a UUIDv7 string, so ids sort by creation time.
func New() string {
	u, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}

// Compact is New without separators: 32 lowercase hex characters.
func Compact() string { return strings.ReplaceAll(New(), "-", "") }
