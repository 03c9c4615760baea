package apperr

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrMalformedMetadata = errors.New("malformed metadata")
	ErrConversionFailure = errors.New("conversion failure")
)
