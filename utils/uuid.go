package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a random id used for request ids and the fake API records
func GenerateID() string {
	return uuid.NewString()
}
