package transform

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/jsonc"
)

// JSONOptions controls FormatJSON.
type JSONOptions struct {
	Indent        string
	AllowComments bool
}

// FormatJSON pretty-prints input, keeping key order and number literals as
// written. Several concatenated top-level values are formatted one after the
// other, separated by a newline. Whitespace-only input yields "".
func FormatJSON(input string, opts JSONOptions) (string, error) {
	src := []byte(input)
	if opts.AllowComments {
		src = jsonc.ToJSON(src)
	}

	dec := json.NewDecoder(bytes.NewReader(src))
	var values []string
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", opts.Indent); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		values = append(values, buf.String())
	}
	return strings.Join(values, "\n"), nil
}
