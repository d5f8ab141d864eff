package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrValidation         = errors.New("validation failed")
	ErrStorage            = errors.New("storage failure")
)

var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrAdNotFound      = fmt.Errorf("ad %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
	ErrImageNotFound   = fmt.Errorf("image %w", ErrNotFound)
	ErrFileNotFound    = fmt.Errorf("file %w", ErrNotFound)

	ErrAlreadyRegistered        = fmt.Errorf("user %w", ErrAlreadyExists)
	ErrIncorrectCurrentPassword = errors.New("current password is incorrect")
	ErrFileExists               = fmt.Errorf("%w: file already exists", ErrStorage)
)
