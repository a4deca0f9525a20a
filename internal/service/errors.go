package service

import "errors"

const maxTitleLength = 100

var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTitleTooLong = errors.New("title is too long")
)
