package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrNoExtension = errors.New("document has no hazard extension")
)

// Context keys for error values
const (
	DocumentKey = "document"
)
