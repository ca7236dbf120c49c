// Package uuid generates identifiers for records created through the API.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string, falling back to a random v4 when
// the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
