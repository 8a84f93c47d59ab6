package utils

import "github.com/google/uuid"

// NewID returns a fresh row identifier.
func NewID() string { return uuid.NewString() }
