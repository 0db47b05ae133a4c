package transform

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// Base64Encode encodes the raw bytes of s with the standard padded alphabet.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes s with the standard padded alphabet and requires the
// result to be UTF-8 text.
func Base64Decode(s string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	return string(raw), nil
}
