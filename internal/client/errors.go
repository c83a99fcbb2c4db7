package client

import "errors"

var (
	ErrNilService = errors.New("field service is nil")
	ErrNilUI      = errors.New("ui is nil")
)
