package qrcode

import "errors"

var (
	// ErrEmptyPayload ...
	ErrEmptyPayload = errors.New("payload must not be empty")
	// ErrInvalidWidth ...
	ErrInvalidWidth = errors.New("image width must be a positive number of pixels")
	// ErrInvalidMargin ...
	ErrInvalidMargin = errors.New("margin must not be negative")
)
