package service

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCommunityNotFound = errors.New("community not found")
	ErrContentNotFound   = errors.New("content not found")
	ErrEmailExists       = errors.New("email already exists")
	ErrValidation        = errors.New("missing required field")
)
