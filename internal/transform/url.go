package transform

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// URLEncode percent-encodes every byte outside the unreserved set
// (A-Z a-z 0-9 - _ . ~). Spaces become %20, never '+'.
func URLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// URLDecode reverses URLEncode. '+' is kept literally.
// The decoded bytes must form valid UTF-8.
func URLDecode(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPercentEncoding, err)
	}
	if !utf8.ValidString(decoded) {
		return "", ErrInvalidUTF8
	}
	return decoded, nil
}
