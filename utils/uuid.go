package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// ShortID returns the first block of a fresh UUID, used to tag requests in logs
func ShortID() string {
	return GenerateID()[:8]
}
