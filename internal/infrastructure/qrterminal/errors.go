package qrterminal

import "errors"

// ErrEmptyPayload ...
var ErrEmptyPayload = errors.New("payload must not be empty")
