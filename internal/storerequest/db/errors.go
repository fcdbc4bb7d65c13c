package storerequestdb

import "errors"

var (
	ErrRequestNotFound     = errors.New("store request not found")
	ErrActiveRequestExists = errors.New("user already has an active store request")
	ErrUserNotFound        = errors.New("user not found")
)
