package roomstatus

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid room status")
)
