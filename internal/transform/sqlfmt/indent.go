package sqlfmt

import "strings"

type indentKind int

const (
	indentTopLevel indentKind = iota
	indentBlockLevel
)

// indentation tracks nested clause and parenthesis levels.
type indentation struct {
	unit  string
	stack []indentKind
}

func (in *indentation) String() string {
	return strings.Repeat(in.unit, len(in.stack))
}

func (in *indentation) increaseTopLevel() {
	in.stack = append(in.stack, indentTopLevel)
}

func (in *indentation) increaseBlockLevel() {
	in.stack = append(in.stack, indentBlockLevel)
}

// decreaseTopLevel leaves the current clause, if one is open.
func (in *indentation) decreaseTopLevel() {
	if n := len(in.stack); n > 0 && in.stack[n-1] == indentTopLevel {
		in.stack = in.stack[:n-1]
	}
}

// decreaseBlockLevel closes every clause opened inside the innermost
// parenthesis, then the parenthesis itself.
func (in *indentation) decreaseBlockLevel() {
	for len(in.stack) > 0 {
		last := in.stack[len(in.stack)-1]
		in.stack = in.stack[:len(in.stack)-1]
		if last != indentTopLevel {
			return
		}
	}
}

func (in *indentation) reset() {
	in.stack = in.stack[:0]
}

// maxInlineBlockLength is the longest parenthesised group kept on one line.
const maxInlineBlockLength = 50

// inlineBlock tracks parenthesised groups short enough to stay on one line,
// such as function arguments or IN lists.
type inlineBlock struct {
	level int
}

func (b *inlineBlock) beginIfPossible(tokens []token, index int) {
	switch {
	case b.level == 0 && isInlineBlock(tokens, index):
		b.level = 1
	case b.level > 0:
		b.level++
	default:
		b.level = 0
	}
}

func (b *inlineBlock) end() {
	b.level--
}

func (b *inlineBlock) active() bool {
	return b.level > 0
}

// isInlineBlock reports whether the group opening at tokens[index] closes
// within maxInlineBlockLength bytes and holds nothing that forces a line break.
func isInlineBlock(tokens []token, index int) bool {
	length, level := 0, 0
	for _, tok := range tokens[index:] {
		length += len(tok.value)
		if length > maxInlineBlockLength {
			return false
		}

		switch tok.kind {
		case tokenOpenParen:
			level++
		case tokenCloseParen:
			level--
			if level == 0 {
				return true
			}
		case tokenReservedTopLevel, tokenReservedNewline, tokenLineComment, tokenBlockComment:
			return false
		}
		if tok.value == ";" {
			return false
		}
	}
	return false
}
