package vocabulary

import "errors"

var (
	// ErrInvalidSize ...
	ErrInvalidSize = errors.New("word list must contain exactly 2048 words")
	// ErrNotLowercase ...
	ErrNotLowercase = errors.New("word list must contain lowercase words only")
	// ErrDuplicateWord ...
	ErrDuplicateWord = errors.New("word list contains duplicates")
)
