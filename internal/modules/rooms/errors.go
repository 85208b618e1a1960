package rooms

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNumberTaken = errors.New("room number already exists")
)
