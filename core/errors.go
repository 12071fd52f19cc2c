package core

import "errors"

var (
	ErrNotFound            = errors.New("demos: not found")
	ErrInvalidTemplatePath = errors.New("demos: invalid template path")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
