package transform

import (
	"errors"
)

// -- Sentinels --

var (
	ErrInvalidPercentEncoding = errors.New("invalid percent encoding")
	ErrInvalidUTF8            = errors.New("decoded bytes are not valid UTF-8")
	ErrInvalidBase64          = errors.New("invalid base64 input")
	ErrInvalidJSON            = errors.New("invalid json")
	ErrInvalidEpoch           = errors.New("epoch must be a signed 64-bit integer")
	ErrEpochOutOfRange        = errors.New("epoch outside the representable date range")
)
