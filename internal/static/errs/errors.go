package errs

import "errors"

var (
	// ErrTemplateLoad means a template resource was missing or unreadable.
	ErrTemplateLoad = errors.New("template load failed")
	// ErrTemplateNotFound means a template store holds no entry for a name.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTransport means an outbound call failed outright.
	ErrTransport = errors.New("transport error")
	// ErrMalformedResponse means an upstream answered with an unusable body.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInvalidRequest means an inbound request could not be accepted.
	ErrInvalidRequest = errors.New("invalid request")
)
