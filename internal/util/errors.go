package util

import "errors"

var (
	ErrUsernameRequired    = errors.New("username is required")
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrPasswordRequired    = errors.New("password is required")
	ErrResultNotFound      = errors.New("exam result not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid admin token")
)
