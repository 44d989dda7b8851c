package person

import "errors"

var (
	ErrPersonNotFound        = errors.New("person not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrManagerAccessRequired = errors.New("manager access required")
)
