package todo

import "errors"

var (
	ErrListExists     = errors.New("list already exists")
	ErrInvalidDueDate = errors.New("due date must be YYYY-MM-DD")
)
