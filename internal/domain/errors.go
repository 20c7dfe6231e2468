package domain

import "errors"

var (
	ErrEmptyPayload         = errors.New("no file content received")
	ErrInvalidEndpoint      = errors.New("invalid endpoint name")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload exceeds maximum allowed size")
	ErrUpstreamUnreachable  = errors.New("upstream OCR service unreachable")
)
