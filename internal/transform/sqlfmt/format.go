// Package sqlfmt reformats SQL text: clause keywords on their own lines,
// clause bodies indented, optional upper-casing of reserved words.
//
// The formatter is lexical. It never parses the statement, so any input,
// including malformed SQL, produces output.
package sqlfmt

import (
	"regexp"
	"strings"
)

// Options controls the output style.
type Options struct {
	// Indent is the string used for one level of indentation.
	Indent string
	// Uppercase upper-cases reserved words; other words keep their case.
	Uppercase bool
	// LinesBetweenQueries is the number of blank lines after each ';'.
	LinesBetweenQueries int
}

// DefaultOptions returns four-space indentation, upper-cased keywords and
// one blank line between statements.
func DefaultOptions() Options {
	return Options{
		Indent:              "    ",
		Uppercase:           true,
		LinesBetweenQueries: 1,
	}
}

var multiSpace = regexp.MustCompile(`\s+`)

// Format reformats input according to opts.
func Format(input string, opts Options) string {
	f := &formatter{
		opts:   opts,
		tokens: tokenize(input),
		indent: indentation{unit: opts.Indent},
	}
	return f.format()
}

type formatter struct {
	opts   Options
	tokens []token
	index  int

	indent       indentation
	inline       inlineBlock
	lastReserved *token

	out []byte
}

func (f *formatter) format() string {
	for i, tok := range f.tokens {
		f.index = i
		if tok.kind == tokenWhitespace {
			continue
		}

		switch tok.kind {
		case tokenLineComment:
			f.write(tok.value)
			f.newline()
		case tokenBlockComment:
			f.newline()
			f.write(strings.ReplaceAll(tok.value, "\n", "\n"+f.indent.String()))
			f.newline()
		case tokenReservedTopLevel:
			f.indent.decreaseTopLevel()
			f.newline()
			f.indent.increaseTopLevel()
			f.write(f.keyword(tok))
			f.newline()
			f.lastReserved = &f.tokens[i]
		case tokenReservedTopLevelNoIndent:
			f.indent.decreaseTopLevel()
			f.newline()
			f.write(f.keyword(tok))
			f.newline()
			f.lastReserved = &f.tokens[i]
		case tokenReservedNewline:
			if !(isAnd(tok) && f.lastReservedIs("BETWEEN")) {
				f.newline()
			}
			f.write(f.keyword(tok) + " ")
			f.lastReserved = &f.tokens[i]
		case tokenReserved:
			f.write(f.keyword(tok) + " ")
			f.lastReserved = &f.tokens[i]
		case tokenOpenParen:
			f.openParen(tok)
		case tokenCloseParen:
			f.closeParen(tok)
		default:
			f.plain(tok)
		}
	}
	return strings.TrimSpace(string(f.out))
}

func (f *formatter) plain(tok token) {
	switch tok.value {
	case ",":
		f.trimEnd()
		f.write(", ")
		if f.inline.active() || f.lastReservedIs("LIMIT") {
			return
		}
		f.newline()
	case ";":
		f.indent.reset()
		f.trimEnd()
		f.write(";" + strings.Repeat("\n", f.opts.LinesBetweenQueries+1))
		f.lastReserved = nil
	case ".":
		f.trimEnd()
		f.write(".")
	case ":":
		f.trimEnd()
		f.write(": ")
	default:
		f.write(tok.value + " ")
	}
}

func (f *formatter) openParen(tok token) {
	// Drop the space before '(' unless the source had whitespace there or it
	// follows another '(' or a comment, so calls stay tight: count(*).
	prev := f.previous()
	if prev == nil || (prev.kind != tokenWhitespace && prev.kind != tokenOpenParen && prev.kind != tokenLineComment) {
		f.trimEnd()
	}
	f.write(f.keyword(tok))

	f.inline.beginIfPossible(f.tokens, f.index)
	if !f.inline.active() {
		f.indent.increaseBlockLevel()
		f.newline()
	}
}

func (f *formatter) closeParen(tok token) {
	if f.inline.active() {
		f.inline.end()
		f.trimEnd()
		f.write(f.keyword(tok) + " ")
		return
	}
	f.indent.decreaseBlockLevel()
	f.newline()
	f.write(f.keyword(tok) + " ")
}

func (f *formatter) keyword(tok token) string {
	value := multiSpace.ReplaceAllString(tok.value, " ")
	if f.opts.Uppercase {
		value = strings.ToUpper(value)
	}
	return value
}

func (f *formatter) lastReservedIs(word string) bool {
	return f.lastReserved != nil && strings.EqualFold(f.lastReserved.value, word)
}

func (f *formatter) write(s string) {
	f.out = append(f.out, s...)
}

// newline ends the current line unless one was just ended, then writes the
// current indent.
func (f *formatter) newline() {
	f.trimEnd()
	if len(f.out) > 0 && f.out[len(f.out)-1] != '\n' {
		f.out = append(f.out, '\n')
	}
	f.write(f.indent.String())
}

func (f *formatter) trimEnd() {
	for len(f.out) > 0 {
		c := f.out[len(f.out)-1]
		if c != ' ' && c != '\t' {
			return
		}
		f.out = f.out[:len(f.out)-1]
	}
}

func (f *formatter) previous() *token {
	if f.index == 0 {
		return nil
	}
	return &f.tokens[f.index-1]
}

func isAnd(tok token) bool {
	return strings.EqualFold(tok.value, "AND")
}
