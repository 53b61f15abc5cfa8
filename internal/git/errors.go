package git

import "errors"

var (
	ErrCloneFailed             = errors.New("failed to clone repository")
	ErrRepositoryAlreadyExists = errors.New("repository already exists")
)
