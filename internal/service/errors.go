package service

import "errors"

var (
	// ErrFieldNotFound is returned by mutating operations addressed to a name
	// no field matches.
	ErrFieldNotFound = errors.New("custom field not found")
	// ErrFieldExists is returned when adding or renaming would produce two
	// fields whose names differ only by case.
	ErrFieldExists = errors.New("custom field already exists")
)
