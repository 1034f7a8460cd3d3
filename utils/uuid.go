package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GeneratePrefixedID returns prefix-<uuid>, e.g. ORD-0b6c...
func GeneratePrefixedID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}
