package userdb

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrIDNumberAlreadyExists = errors.New("id number already exists")
)
