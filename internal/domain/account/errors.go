package account

import "errors"

var (
	ErrNotFound   = errors.New("account not found")
	ErrLoginTaken = errors.New("login already taken")
)
