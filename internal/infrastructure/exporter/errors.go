package exporter

import "errors"

var (
	// ErrMissingDir ...
	ErrMissingDir = errors.New("missing output directory")
	// ErrInvalidFilename ...
	ErrInvalidFilename = errors.New("invalid filename")
)
