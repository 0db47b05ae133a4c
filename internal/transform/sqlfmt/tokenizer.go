package sqlfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenWhitespace tokenKind = iota
	tokenWord
	tokenString
	tokenNumber
	tokenPlaceholder
	tokenOperator
	tokenOpenParen
	tokenCloseParen
	tokenLineComment
	tokenBlockComment
	tokenReserved
	tokenReservedTopLevel
	tokenReservedTopLevelNoIndent
	tokenReservedNewline
)

type token struct {
	kind  tokenKind
	value string
}

func (t token) isReserved() bool {
	switch t.kind {
	case tokenReserved, tokenReservedTopLevel, tokenReservedTopLevelNoIndent, tokenReservedNewline:
		return true
	}
	return false
}

// Longest operators first.
var multiCharOperators = []string{
	"!~~*", "->>", "!~~", "~~*", "!~*", "!=", "<>", "==", "<=", ">=", "!<", "!>",
	"||", "::", "->", "~~", "~*", "!~", ":=", "&&", "<<", ">>",
}

// tokenize splits input into tokens. It consumes every byte, so malformed
// SQL still yields a token stream.
func tokenize(input string) []token {
	var tokens []token
	for pos := 0; pos < len(input); {
		tok := nextToken(input[pos:])
		tokens = append(tokens, tok)
		pos += len(tok.value)
	}
	return tokens
}

func nextToken(s string) token {
	r, size := utf8.DecodeRuneInString(s)

	switch {
	case unicode.IsSpace(r):
		return token{kind: tokenWhitespace, value: s[:scanWhile(s, unicode.IsSpace)]}
	case strings.HasPrefix(s, "--") || r == '#':
		end := strings.IndexByte(s, '\n')
		if end < 0 {
			end = len(s)
		}
		return token{kind: tokenLineComment, value: strings.TrimRight(s[:end], "\r")}
	case strings.HasPrefix(s, "/*"):
		end := strings.Index(s[2:], "*/")
		if end < 0 {
			return token{kind: tokenBlockComment, value: s}
		}
		return token{kind: tokenBlockComment, value: s[:end+4]}
	case r == '\'' || r == '"' || r == '`':
		return token{kind: tokenString, value: s[:scanQuoted(s, byte(r))]}
	case r == '(':
		return token{kind: tokenOpenParen, value: "("}
	case r == ')':
		return token{kind: tokenCloseParen, value: ")"}
	case r >= '0' && r <= '9':
		return token{kind: tokenNumber, value: s[:scanNumber(s)]}
	case r == '?' || r == '$' || r == ':' || r == '@':
		if n := scanPlaceholder(s); n > 0 {
			return token{kind: tokenPlaceholder, value: s[:n]}
		}
	case isWordRune(r):
		return wordToken(s)
	}

	for _, op := range multiCharOperators {
		if strings.HasPrefix(s, op) {
			return token{kind: tokenOperator, value: op}
		}
	}
	return token{kind: tokenOperator, value: s[:size]}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

func scanWhile(s string, pred func(rune) bool) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !pred(r) {
			break
		}
		n += size
	}
	return n
}

// scanQuoted returns the length of a quoted literal. A doubled quote or a
// backslash escapes the quote; an unterminated literal runs to the end.
func scanQuoted(s string, quote byte) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			if i+1 < len(s) && s[i+1] == quote {
				i++
				continue
			}
			return i + 1
		}
	}
	return len(s)
}

func scanNumber(s string) int {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		n := 2 + scanWhile(s[2:], func(r rune) bool {
			return unicode.Is(unicode.ASCII_Hex_Digit, r)
		})
		if n > 2 {
			return n
		}
	}

	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	n := scanWhile(s, isDigit)
	if n+1 < len(s) && s[n] == '.' && isDigit(rune(s[n+1])) {
		n += 1 + scanWhile(s[n+1:], isDigit)
	}
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		exp := n + 1
		if exp < len(s) && (s[exp] == '-' || s[exp] == '+') {
			exp++
		}
		if digits := scanWhile(s[exp:], isDigit); digits > 0 {
			n = exp + digits
		}
	}
	return n
}

// scanPlaceholder recognises ?, ?1, $1, :name and @name.
func scanPlaceholder(s string) int {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	switch s[0] {
	case '?':
		return 1 + scanWhile(s[1:], isDigit)
	case '$':
		if n := scanWhile(s[1:], isDigit); n > 0 {
			return 1 + n
		}
	case ':', '@':
		if len(s) > 1 && s[1] == s[0] {
			return 0
		}
		if n := scanWhile(s[1:], isWordRune); n > 0 {
			return 1 + n
		}
	}
	return 0
}

func wordToken(s string) token {
	for _, kw := range keywords {
		if n := matchKeyword(s, kw.parts); n > 0 {
			return token{kind: kw.kind, value: s[:n]}
		}
	}
	return token{kind: tokenWord, value: s[:scanWhile(s, isWordRune)]}
}

// matchKeyword matches parts case-insensitively, separated by whitespace,
// and requires a word boundary after the last part.
func matchKeyword(s string, parts []string) int {
	pos := 0
	for i, part := range parts {
		if i > 0 {
			ws := scanWhile(s[pos:], unicode.IsSpace)
			if ws == 0 {
				return 0
			}
			pos += ws
		}
		if len(s)-pos < len(part) || !strings.EqualFold(s[pos:pos+len(part)], part) {
			return 0
		}
		pos += len(part)
	}
	if pos < len(s) {
		r, _ := utf8.DecodeRuneInString(s[pos:])
		if isWordRune(r) {
			return 0
		}
	}
	return pos
}
