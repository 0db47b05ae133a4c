package transform

import (
	"github.com/Cyclone1070/devtoolbox/internal/transform/sqlfmt"
)

// Options carries the fixed styles of the formatting transforms.
type Options struct {
	JSON JSONOptions
	SQL  sqlfmt.Options
}

// DefaultOptions returns two-space JSON and four-space, upper-cased SQL with
// one blank line between statements.
func DefaultOptions() Options {
	return Options{
		JSON: JSONOptions{
			Indent:        "  ",
			AllowComments: true,
		},
		SQL: sqlfmt.DefaultOptions(),
	}
}

// FormatSQL reformats input with opts. It never fails: unrecognised text is
// carried through token by token.
func FormatSQL(input string, opts sqlfmt.Options) string {
	return sqlfmt.Format(input, opts)
}
