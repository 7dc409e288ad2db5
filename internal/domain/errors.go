package domain

import "errors"

// Auth and signup errors
var (
	ErrUserNameTaken      = errors.New("user name already taken")
	ErrShopNameTaken      = errors.New("shop name already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Shop errors
var (
	ErrShopNotFound = errors.New("shop not found")
)
