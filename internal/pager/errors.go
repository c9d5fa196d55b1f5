package pager

import "errors"

var (
	// ErrInvalidOptions is returned when an option lies outside its declared domain
	ErrInvalidOptions = errors.New("invalid pager options")
	// ErrViewNotFound is returned when removing a view the pager does not own
	ErrViewNotFound = errors.New("view not registered with pager")
)
