package event

import "errors"

var (
	ErrMissingEventType = errors.New("Missing required header X-GitHub-Event")
	ErrInvalidPayload   = errors.New("Expected JSON object payload")
	ErrInvalidLimit     = errors.New("limit must be an integer")
)
