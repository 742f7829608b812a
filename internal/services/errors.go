package services

import "errors"

// Errors returned by the engagement service. Handlers map these to HTTP
// status codes; anything else is treated as an internal error.
var (
	ErrSelfFollow      = errors.New("cannot follow yourself")
	ErrProjectNotFound = errors.New("project not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrCommentNotFound = errors.New("parent comment not found")
	ErrInvalidParent   = errors.New("parent comment must be a top-level comment on the same project")
)
