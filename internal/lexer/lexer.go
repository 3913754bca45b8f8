package lexer

import (
	"github.com/Willie169/bython/internal/source"
	"github.com/Willie169/bython/internal/token"
)

// Lexer is the raw scanner: it turns source bytes into a flat token sequence
// without deciding which newlines are statement-significant. That decision
// belongs to Stream, which wraps a Lexer (or any Scanner).
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// New creates a raw scanner for the provided file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next raw token. Inline spaces, comments, and
// backslash-continued line breaks are skipped; every physical newline comes
// back as a Newline token whose text covers the newline characters plus any
// trailing indentation. After end of input, Next keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipInsignificant()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()

	switch {
	case isNewlineByte(ch):
		return lx.scanNewline()

	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// possible Unicode identifier; scanIdentOrKeyword sorts it out
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case ch == '"' || ch == '\'':
		return lx.scanString()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// Lookahead returns up to the next two unconsumed bytes and how many of them
// exist. Stream's newline classifier is the only caller.
func (lx *Lexer) Lookahead() (b0, b1 byte, n int) {
	if b0, b1, ok := lx.cursor.Peek2(); ok {
		return b0, b1, 2
	}
	if lx.cursor.EOF() {
		return 0, 0, 0
	}
	return lx.cursor.Peek(), 0, 1
}

// Offset returns the current byte offset of the scanner.
func (lx *Lexer) Offset() uint32 {
	return lx.cursor.Off
}

// skipInsignificant consumes inline spaces and tabs, '#' comments up to (not
// including) the line terminator, and backslash-newline continuations.
func (lx *Lexer) skipInsignificant() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			lx.cursor.Bump()
			continue
		}

		if b == '#' {
			for !lx.cursor.EOF() && !isNewlineByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			continue
		}

		// explicit line joining: backslash directly before a line terminator
		if b == '\\' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\\' && isNewlineByte(b1) {
				lx.cursor.Bump() // backslash
				lx.eatNewlineChars()
				continue
			}
		}

		break
	}
}

// scanNewline consumes one line terminator (\r\n, \r, \n, or \f) plus any
// trailing spaces and tabs. The classifier later splits the captured text
// into newline characters and indentation.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	lx.eatNewlineChars()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Newline,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// eatNewlineChars consumes exactly one \r\n pair or one of \r, \n, \f.
func (lx *Lexer) eatNewlineChars() {
	if lx.cursor.Eat('\r') {
		lx.cursor.Eat('\n')
		return
	}
	if lx.cursor.Eat('\n') {
		return
	}
	lx.cursor.Eat('\f')
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
