package domain

import "errors"

// Domain-level errors
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
