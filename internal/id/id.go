package id

import "github.com/google/uuid"

// New returns a random identifier for selections and sessions.
func New() string {
	return uuid.NewString()
}
